package game

import (
	"errors"
	"math/rand"
	"time"

	"slot_game/internal/repository"
	"slot_game/internal/service"
	"slot_game/pkg/redeem"
)

var (
	ErrUnknownSymbol        = errors.New("unknown symbol")
	ErrSymbolCount          = errors.New("exactly 3 symbols required")
	ErrInvalidProbabilities = errors.New("probabilities must be non-negative numbers")
	ErrEmptyPlayerID        = errors.New("player id is required")
)

// Количество барабанов
const reels = 3

type serv struct {
	store repository.ConfigStore
	codes *redeem.Generator
	intn  func(n int) int
	now   func() time.Time
}

type Option func(*serv)

// WithRand подменяет источник случайных индексов символов
func WithRand(intn func(n int) int) Option {
	return func(s *serv) { s.intn = intn }
}

func WithClock(now func() time.Time) Option {
	return func(s *serv) { s.now = now }
}

func WithCodeGenerator(g *redeem.Generator) Option {
	return func(s *serv) { s.codes = g }
}

// NewGameService Создать игру локального варианта поверх хранилища конфигов
func NewGameService(store repository.ConfigStore, opts ...Option) service.GameService {
	s := &serv{
		store: store,
		codes: redeem.NewGenerator(),
		intn:  rand.Intn,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
