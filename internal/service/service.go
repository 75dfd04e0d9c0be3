package service

import (
	"context"

	"slot_game/internal/model"
)

// GameService - локальный вариант: всё состояние игрока в GameConfig
type GameService interface {
	Symbols() []model.Symbol
	DrawSymbols(ctx context.Context, playerID string) ([]model.Symbol, error)
	Check(ctx context.Context, playerID string, names []string) (*model.RoundResult, error)
	VerifyCode(code string) bool

	Probabilities(ctx context.Context, playerID string) (model.ProbabilityConfig, error)
	UpdateProbabilities(ctx context.Context, playerID string, p model.ProbabilityConfig) error
	Stats(ctx context.Context, playerID string) (model.Stats, error)
	ResetStats(ctx context.Context, playerID string) error
	CodeHistory(ctx context.Context, playerID string) ([]model.CodeHistoryEntry, error)
}

// SlotService - сетевой вариант: одна игра на пользователя, исход решает сервер
type SlotService interface {
	Spin(ctx context.Context, userID string) (*model.RoundResult, error)
	VerifyCode(ctx context.Context, code string) (*model.CodeVerification, error)
	Stats(ctx context.Context) (model.Stats, error)
	WinHistory(ctx context.Context) ([]model.WinRecord, error)
}

type UserService interface {
	// Create возвращает created=false, если пользователь уже существует
	Create(ctx context.Context, userID string, slotType model.SlotType) (user *model.SlotUser, created bool, err error)
	Get(ctx context.Context, userID string) (*model.SlotUser, error)
	List(ctx context.Context) ([]model.SlotUser, error)
	Update(ctx context.Context, userID string, upd model.UserUpdate) (*model.SlotUser, error)
	Delete(ctx context.Context, userID string) error
}

// BotService формирует ответ чат-бота на текстовое сообщение
type BotService interface {
	ReplyFor(ctx context.Context, userID, text string) string
}
