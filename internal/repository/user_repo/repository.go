package user_repo

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
	table        = "slot_users"
	colID        = "id"
	colUserID    = "user_id"
	colSlotType  = "slot_type"
	colPlayedAt  = "played_at"
	colCreatedAt = "created_at"
)

var (
	psql       = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	allColumns = []string{colID, colUserID, colSlotType, colPlayedAt, colCreatedAt}
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) db(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

func scanUser(row pgx.Row) (*model.SlotUser, error) {
	var (
		user     model.SlotUser
		slotType string
	)
	err := row.Scan(&user.ID, &user.UserID, &slotType, &user.PlayedAt, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.SlotType = model.SlotType(slotType)
	return &user, nil
}

// CreateUser - создает пользователя, возвращает ID записи
func (r *repo) CreateUser(ctx context.Context, user *model.SlotUser) (int, error) {
	query := psql.Insert(table).
		Columns(colUserID, colSlotType, colCreatedAt).
		Values(user.UserID, string(user.SlotType), user.CreatedAt).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUser - пользователь по внешнему user_id, repository.ErrNotFound если его нет
func (r *repo) GetUser(ctx context.Context, userID string) (*model.SlotUser, error) {
	query := psql.Select(allColumns...).
		From(table).
		Where(sq.Eq{colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *repo) ListUsers(ctx context.Context) ([]model.SlotUser, error) {
	query := psql.Select(allColumns...).
		From(table).
		OrderBy(colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.SlotUser, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateUser - перезаписывает slot_type и played_at
func (r *repo) UpdateUser(ctx context.Context, user *model.SlotUser) error {
	query := psql.Update(table).
		Set(colSlotType, string(user.SlotType)).
		Set(colPlayedAt, user.PlayedAt).
		Where(sq.Eq{colUserID: user.UserID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteUser(ctx context.Context, userID string) error {
	query := psql.Delete(table).
		Where(sq.Eq{colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// MarkPlayed - условное обновление, защищает от повторной игры при гонке запросов
func (r *repo) MarkPlayed(ctx context.Context, userID string, at time.Time) (bool, error) {
	sqlStr, args, err := markPlayedQuery(userID, at)
	if err != nil {
		return false, err
	}

	res, err := r.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

func markPlayedQuery(userID string, at time.Time) (string, []any, error) {
	return psql.Update(table).
		Set(colPlayedAt, at).
		Where(sq.Eq{colUserID: userID, colPlayedAt: nil}).
		ToSql()
}
