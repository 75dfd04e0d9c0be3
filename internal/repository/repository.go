package repository

import (
	"context"
	"errors"
	"time"

	"slot_game/internal/model"
)

var ErrNotFound = errors.New("not found")

// ConfigStore хранит GameConfig игрока между раундами.
// Load возвращает конфиг по умолчанию, если ничего не сохранено.
type ConfigStore interface {
	Load(ctx context.Context, playerID string) (*model.GameConfig, error)
	Save(ctx context.Context, playerID string, cfg *model.GameConfig) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.SlotUser) (id int, err error)
	GetUser(ctx context.Context, userID string) (*model.SlotUser, error)
	ListUsers(ctx context.Context) ([]model.SlotUser, error)
	UpdateUser(ctx context.Context, user *model.SlotUser) error
	DeleteUser(ctx context.Context, userID string) error

	// MarkPlayed выставляет played_at, только если он ещё пуст.
	// false означает, что пользователь уже играл.
	MarkPlayed(ctx context.Context, userID string, at time.Time) (bool, error)
}

type WinRecordRepository interface {
	CreateRecord(ctx context.Context, rec *model.WinRecord) (id int, err error)
	GetByCode(ctx context.Context, code string) (*model.WinRecord, error)
	// CountByType - количество записей по каждому исходу, TotalPlays - всего записей
	CountByType(ctx context.Context) (model.Stats, error)
	// History - все записи, новые первыми
	History(ctx context.Context) ([]model.WinRecord, error)
}
