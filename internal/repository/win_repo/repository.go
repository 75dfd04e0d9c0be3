package win_repo

import (
	"context"
	"errors"

	"slot_game/internal/model"
	"slot_game/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "win_records"
	colID        = "id"
	colUserID    = "user_id"
	colWinType   = "win_type"
	colCode      = "code"
	colTimestamp = "timestamp"
)

var (
	psql       = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	allColumns = []string{colID, colUserID, colWinType, colCode, colTimestamp}
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWinRecordRepository(dbc *pgxpool.Pool) repository.WinRecordRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) db(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// nullableCode - пустой код хранится как NULL
func nullableCode(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}

func scanRecord(row pgx.Row) (*model.WinRecord, error) {
	var (
		rec     model.WinRecord
		winType string
		code    *string
	)
	err := row.Scan(&rec.ID, &rec.UserID, &winType, &code, &rec.Timestamp)
	if err != nil {
		return nil, err
	}
	rec.WinType = model.Outcome(winType)
	if code != nil {
		rec.Code = *code
	}
	return &rec, nil
}

// CreateRecord - сохраняет результат спина, возвращает ID записи
func (r *repo) CreateRecord(ctx context.Context, rec *model.WinRecord) (int, error) {
	query := psql.Insert(table).
		Columns(colUserID, colWinType, colCode, colTimestamp).
		Values(rec.UserID, string(rec.WinType), nullableCode(rec.Code), rec.Timestamp).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err = r.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) GetByCode(ctx context.Context, code string) (*model.WinRecord, error) {
	query := psql.Select(allColumns...).
		From(table).
		Where(sq.Eq{colCode: code}).
		Limit(1)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rec, err := scanRecord(r.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func countQuery() (string, []any, error) {
	return psql.Select(colWinType, "COUNT(*)").
		From(table).
		GroupBy(colWinType).
		ToSql()
}

func (r *repo) CountByType(ctx context.Context) (model.Stats, error) {
	var stats model.Stats

	sqlStr, args, err := countQuery()
	if err != nil {
		return stats, err
	}

	rows, err := r.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			winType string
			count   int
		)
		if err := rows.Scan(&winType, &count); err != nil {
			return stats, err
		}
		stats.TotalPlays += count
		switch model.Outcome(winType) {
		case model.OutcomeJackpot:
			stats.JackpotCount = count
		case model.OutcomeBigWin:
			stats.BigWinCount = count
		case model.OutcomeSmallWin:
			stats.SmallWinCount = count
		case model.OutcomeLose:
			stats.LoseCount = count
		}
	}
	return stats, rows.Err()
}

func (r *repo) History(ctx context.Context) ([]model.WinRecord, error) {
	query := psql.Select(allColumns...).
		From(table).
		OrderBy(colTimestamp+" DESC", colID+" DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]model.WinRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *rec)
	}
	return history, rows.Err()
}
