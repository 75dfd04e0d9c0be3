package slot

import (
	"context"
	"errors"
	"fmt"

	"slot_game/internal/metrics"
	"slot_game/internal/model"
	"slot_game/internal/repository"
	"slot_game/pkg/redeem"
)

// VerifyCode: формат, затем чексумма, затем наличие кода среди выданных
func (s *serv) VerifyCode(ctx context.Context, code string) (*model.CodeVerification, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	res, err := s.verify(ctx, code)
	if err != nil {
		return nil, err
	}
	metrics.RecordCodeVerification(metrics.VariantBackend, res.Valid)
	return res, nil
}

func (s *serv) verify(ctx context.Context, code string) (*model.CodeVerification, error) {
	if !redeem.WellFormed(code) {
		return &model.CodeVerification{Message: MsgInvalidFormat}, nil
	}
	if !redeem.Verify(code) {
		return &model.CodeVerification{Message: MsgChecksumMismatch}, nil
	}

	rec, err := s.winRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.CodeVerification{Message: MsgCodeNotFound}, nil
		}
		return nil, fmt.Errorf("get win record: %w", err)
	}

	return &model.CodeVerification{
		Valid:   true,
		Message: MsgCodeValid,
		WinType: rec.WinType,
	}, nil
}

func (s *serv) Stats(ctx context.Context) (model.Stats, error) {
	stats, err := s.winRepo.CountByType(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("count win records: %w", err)
	}
	return stats, nil
}

func (s *serv) WinHistory(ctx context.Context) ([]model.WinRecord, error) {
	history, err := s.winRepo.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("win history: %w", err)
	}
	return history, nil
}
