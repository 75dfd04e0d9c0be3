package game

import (
	"context"
	"fmt"
	"time"

	"slot_game/internal/metrics"
	"slot_game/internal/model"
	"slot_game/pkg/logger"
	"slot_game/pkg/redeem"

	"go.uber.org/zap"
)

// DrawSymbols выбирает 3 символа равновероятно и независимо.
// Веса исходов на выбор не влияют, в том числе при нулевой сумме весов.
func (s *serv) DrawSymbols(ctx context.Context, playerID string) ([]model.Symbol, error) {
	if playerID == "" {
		return nil, ErrEmptyPlayerID
	}

	cfg, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Stats.TotalPlays++
	if err = s.store.Save(ctx, playerID, cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	all := model.Symbols()
	drawn := make([]model.Symbol, reels)
	for i := range drawn {
		drawn[i] = all[s.intn(len(all))]
	}
	return drawn, nil
}

// Check классифицирует присланные символы, обновляет счётчик
// и для выигрыша выпускает код, который попадает в историю
func (s *serv) Check(ctx context.Context, playerID string, names []string) (res *model.RoundResult, err error) {
	start := time.Now()
	defer func() {
		var outcome string
		if res != nil {
			outcome = string(res.Type)
		}
		metrics.RecordSpin(metrics.VariantLocal, outcome, start)
	}()

	if playerID == "" {
		return nil, ErrEmptyPlayerID
	}
	if len(names) != reels {
		return nil, ErrSymbolCount
	}

	symbols := make([]model.Symbol, reels)
	for i, name := range names {
		sym, ok := model.SymbolByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
		}
		symbols[i] = sym
	}

	cfg, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	outcome := Classify(names[0], names[1], names[2])
	cfg.Stats.Record(outcome)

	result := &model.RoundResult{
		Message: Message(outcome),
		Type:    outcome,
		Symbols: symbols,
	}

	if outcome.IsWin() {
		result.Code = s.codes.Generate(outcome.CodePrefix())
		cfg.AppendCode(model.CodeHistoryEntry{
			Code:      result.Code,
			Type:      outcome,
			Timestamp: s.now().UnixMilli(),
		})
	}

	if err = s.store.Save(ctx, playerID, cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	logger.Debug("round checked",
		zap.String("player_id", playerID),
		zap.String("outcome", string(outcome)),
		zap.String("code", result.Code),
	)

	return result, nil
}

// VerifyCode проверяет только формат и чексумму кода
func (s *serv) VerifyCode(code string) bool {
	valid := redeem.Verify(code)
	metrics.RecordCodeVerification(metrics.VariantLocal, valid)
	return valid
}

func (s *serv) Symbols() []model.Symbol {
	return model.Symbols()
}
