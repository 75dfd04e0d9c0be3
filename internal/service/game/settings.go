package game

import (
	"context"
	"fmt"
	"math"

	"slot_game/internal/model"
	"slot_game/pkg/logger"

	"go.uber.org/zap"
)

func (s *serv) Probabilities(ctx context.Context, playerID string) (model.ProbabilityConfig, error) {
	cfg, err := s.load(ctx, playerID)
	if err != nil {
		return model.ProbabilityConfig{}, err
	}
	return cfg.Probabilities, nil
}

// UpdateProbabilities заменяет веса целиком, статистику не трогает
func (s *serv) UpdateProbabilities(ctx context.Context, playerID string, p model.ProbabilityConfig) error {
	for _, w := range []float64{p.Jackpot, p.BigWin, p.SmallWin, p.Lose} {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return ErrInvalidProbabilities
		}
	}

	cfg, err := s.load(ctx, playerID)
	if err != nil {
		return err
	}
	cfg.Probabilities = p

	if err = s.store.Save(ctx, playerID, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	logger.Info("probabilities updated", zap.String("player_id", playerID), zap.Any("probabilities", p))
	return nil
}

func (s *serv) Stats(ctx context.Context, playerID string) (model.Stats, error) {
	cfg, err := s.load(ctx, playerID)
	if err != nil {
		return model.Stats{}, err
	}
	return cfg.Stats, nil
}

// ResetStats обнуляет счётчики и историю кодов, веса сохраняются
func (s *serv) ResetStats(ctx context.Context, playerID string) error {
	cfg, err := s.load(ctx, playerID)
	if err != nil {
		return err
	}
	cfg.Reset()

	if err = s.store.Save(ctx, playerID, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	logger.Info("stats reset", zap.String("player_id", playerID))
	return nil
}

func (s *serv) CodeHistory(ctx context.Context, playerID string) ([]model.CodeHistoryEntry, error) {
	cfg, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return cfg.CodeHistory, nil
}

func (s *serv) load(ctx context.Context, playerID string) (*model.GameConfig, error) {
	if playerID == "" {
		return nil, ErrEmptyPlayerID
	}
	cfg, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
