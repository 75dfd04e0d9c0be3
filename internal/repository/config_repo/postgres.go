package config_repo

import (
	"context"
	"errors"
	"time"

	"slot_game/internal/model"
	"slot_game/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "game_configs"
	colPlayerID  = "player_id"
	colConfig    = "config"
	colUpdatedAt = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresStore struct {
	dbc      *pgxpool.Pool
	getter   *trmpgx.CtxGetter
	defaults model.ProbabilityConfig
}

func NewPostgresStore(dbc *pgxpool.Pool, defaults model.ProbabilityConfig) *PostgresStore {
	return &PostgresStore{
		dbc:      dbc,
		getter:   trmpgx.DefaultCtxGetter,
		defaults: defaults,
	}
}

var _ repository.ConfigStore = (*PostgresStore)(nil)

func selectQuery(playerID string) (string, []any, error) {
	return psql.Select(colConfig).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		ToSql()
}

func updateQuery(playerID string, data []byte, at time.Time) (string, []any, error) {
	return psql.Update(table).
		Set(colConfig, data).
		Set(colUpdatedAt, at).
		Where(sq.Eq{colPlayerID: playerID}).
		ToSql()
}

func insertQuery(playerID string, data []byte, at time.Time) (string, []any, error) {
	return psql.Insert(table).
		Columns(colPlayerID, colConfig, colUpdatedAt).
		Values(playerID, data, at).
		ToSql()
}

// Load - конфиг игрока, либо конфиг по умолчанию, если записи нет
func (s *PostgresStore) Load(ctx context.Context, playerID string) (*model.GameConfig, error) {
	sqlStr, args, err := selectQuery(playerID)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.getter.DefaultTrOrDB(ctx, s.dbc).QueryRow(ctx, sqlStr, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewGameConfig(s.defaults), nil
		}
		return nil, err
	}

	return decode(data, s.defaults)
}

// Save - обновление записи, если строки нет - вставка
func (s *PostgresStore) Save(ctx context.Context, playerID string, cfg *model.GameConfig) error {
	data, err := encode(cfg)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	db := s.getter.DefaultTrOrDB(ctx, s.dbc)

	sqlStr, args, err := updateQuery(playerID, data, now)
	if err != nil {
		return err
	}
	res, err := db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if res.RowsAffected() == 0 {
		sqlStr, args, err = insertQuery(playerID, data, now)
		if err != nil {
			return err
		}
		if _, err = db.Exec(ctx, sqlStr, args...); err != nil {
			return err
		}
	}
	return nil
}
