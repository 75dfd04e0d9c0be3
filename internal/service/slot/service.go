package slot

import (
	"errors"
	"math/rand"
	"time"

	"slot_game/internal/config"
	"slot_game/internal/repository"
	"slot_game/internal/service"
	"slot_game/pkg/redeem"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

var (
	ErrEmptyUserID   = errors.New("user id is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyPlayed = errors.New("user has already played")
	ErrEmptyCode     = errors.New("code is required")
)

// Ответы проверки кода
const (
	MsgInvalidFormat    = "Invalid code format"
	MsgChecksumMismatch = "Checksum mismatch"
	MsgCodeNotFound     = "Code not found in records"
	MsgCodeValid        = "Code is valid"
)

type serv struct {
	slotCfg   config.SlotConfig
	userRepo  repository.UserRepository
	winRepo   repository.WinRecordRepository
	txManager trm.Manager

	codes *redeem.Generator
	// roll - равномерное число в [0, 100)
	roll func() float64
	intn func(n int) int
	now  func() time.Time
}

type Option func(*serv)

func WithRoll(roll func() float64) Option {
	return func(s *serv) { s.roll = roll }
}

func WithRand(intn func(n int) int) Option {
	return func(s *serv) { s.intn = intn }
}

func WithClock(now func() time.Time) Option {
	return func(s *serv) { s.now = now }
}

func WithCodeGenerator(g *redeem.Generator) Option {
	return func(s *serv) { s.codes = g }
}

// NewSlotService Создать слот сетевого варианта: одна игра на пользователя
func NewSlotService(
	slotCfg config.SlotConfig,
	userRepo repository.UserRepository,
	winRepo repository.WinRecordRepository,
	txManager trm.Manager,
	opts ...Option,
) service.SlotService {
	s := &serv{
		slotCfg:   slotCfg,
		userRepo:  userRepo,
		winRepo:   winRepo,
		txManager: txManager,
		codes:     redeem.NewGenerator(redeem.WithStamp(redeem.CompactUTC)),
		roll:      func() float64 { return rand.Float64() * 100 },
		intn:      rand.Intn,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
