package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slot_game/internal/metrics"
	"slot_game/internal/model"
	"slot_game/internal/repository"
	"slot_game/internal/service/game"
	"slot_game/pkg/logger"

	"go.uber.org/zap"
)

// Spin решает исход по пресету пользователя и подбирает под него символы.
// Отметка played_at и запись результата идут в одной транзакции.
func (s *serv) Spin(ctx context.Context, userID string) (res *model.RoundResult, err error) {
	start := time.Now()
	defer func() {
		var outcome string
		if res != nil {
			outcome = string(res.Type)
		}
		metrics.RecordSpin(metrics.VariantBackend, outcome, start)
	}()

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.HasPlayed() {
		return nil, ErrAlreadyPlayed
	}

	outcome := pickOutcome(s.slotCfg.Preset(user.SlotType), s.roll())
	symbols := symbolsFor(outcome, s.intn)

	var code string
	if outcome.IsWin() {
		code = s.codes.Generate(outcome.CodePrefix())
	}

	now := s.now().UTC()

	// Начало транзакции: пользователь отмечается сыгравшим вместе с записью результата
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		marked, err := s.userRepo.MarkPlayed(txCtx, userID, now)
		if err != nil {
			return fmt.Errorf("mark played: %w", err)
		}
		// Параллельный запрос успел сыграть раньше
		if !marked {
			return ErrAlreadyPlayed
		}

		_, err = s.winRepo.CreateRecord(txCtx, &model.WinRecord{
			UserID:    userID,
			WinType:   outcome,
			Code:      code,
			Timestamp: now,
		})
		if err != nil {
			return fmt.Errorf("create win record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("spin",
		zap.String("user_id", userID),
		zap.String("slot_type", string(user.SlotType)),
		zap.String("outcome", string(outcome)),
		zap.String("code", code),
	)

	return &model.RoundResult{
		Message: game.Message(outcome),
		Code:    code,
		Type:    outcome,
		Symbols: symbols,
	}, nil
}

// pickOutcome сравнивает бросок с накопленными весами jackpot, bigWin, smallWin.
// Всё, что выше, считается проигрышем.
func pickOutcome(p model.ProbabilityConfig, roll float64) model.Outcome {
	cumulative := p.Jackpot
	if roll < cumulative {
		return model.OutcomeJackpot
	}
	cumulative += p.BigWin
	if roll < cumulative {
		return model.OutcomeBigWin
	}
	cumulative += p.SmallWin
	if roll < cumulative {
		return model.OutcomeSmallWin
	}
	return model.OutcomeLose
}

// symbolsFor подбирает символы так, чтобы game.Classify дал тот же исход
func symbolsFor(outcome model.Outcome, intn func(n int) int) []model.Symbol {
	all := model.Symbols()

	switch outcome {
	case model.OutcomeJackpot:
		sym := all[intn(len(all))]
		return []model.Symbol{sym, sym, sym}

	case model.OutcomeBigWin:
		pair := intn(len(all))
		// Второй символ гарантированно отличается от пары
		other := (pair + 1 + intn(len(all)-1)) % len(all)
		p, o := all[pair], all[other]
		switch intn(3) {
		case 0:
			return []model.Symbol{p, p, o}
		case 1:
			return []model.Symbol{p, o, p}
		default:
			return []model.Symbol{o, p, p}
		}

	case model.OutcomeSmallWin:
		cherry, _ := model.SymbolByName(model.SymbolCherry)
		rest := distinctWithoutCherry(all, 2, intn)
		out := make([]model.Symbol, 0, 3)
		pos := intn(3)
		for i := 0; i < 3; i++ {
			if i == pos {
				out = append(out, cherry)
				continue
			}
			out = append(out, rest[0])
			rest = rest[1:]
		}
		return out

	default:
		return distinctWithoutCherry(all, 3, intn)
	}
}

// distinctWithoutCherry - n разных символов без вишни, частичная перетасовка Фишера-Йетса
func distinctWithoutCherry(all []model.Symbol, n int, intn func(n int) int) []model.Symbol {
	pool := make([]model.Symbol, 0, len(all))
	for _, sym := range all {
		if sym.Name != model.SymbolCherry {
			pool = append(pool, sym)
		}
	}
	for i := 0; i < n; i++ {
		j := i + intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
