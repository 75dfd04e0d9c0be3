package converter

import (
	"errors"

	"slot_game/internal/api/dto/game"
	"slot_game/internal/model"
)

var ErrIncompleteProbabilities = errors.New("jackpot, bigWin, smallWin and lose are required")

func ToGameSymbols(symbols []model.Symbol) []game.Symbol {
	result := make([]game.Symbol, len(symbols))
	for i, s := range symbols {
		result[i] = game.Symbol{Name: s.Name, Src: s.Src}
	}
	return result
}

func ToRoundResponse(res model.RoundResult) game.RoundResponse {
	return game.RoundResponse{
		Message: res.Message,
		Code:    optionalString(res.Code),
		Type:    string(res.Type),
		Symbols: ToGameSymbols(res.Symbols),
	}
}

func ToProbabilitiesDTO(p model.ProbabilityConfig) game.Probabilities {
	return game.Probabilities{
		Jackpot:  p.Jackpot,
		BigWin:   p.BigWin,
		SmallWin: p.SmallWin,
		Lose:     p.Lose,
	}
}

func ToProbabilityConfig(req game.UpdateProbabilitiesRequest) (model.ProbabilityConfig, error) {
	if req.Jackpot == nil || req.BigWin == nil || req.SmallWin == nil || req.Lose == nil {
		return model.ProbabilityConfig{}, ErrIncompleteProbabilities
	}
	return model.ProbabilityConfig{
		Jackpot:  *req.Jackpot,
		BigWin:   *req.BigWin,
		SmallWin: *req.SmallWin,
		Lose:     *req.Lose,
	}, nil
}

func ToGameStatsResponse(s model.Stats) game.StatsResponse {
	return game.StatsResponse{
		TotalPlays:    s.TotalPlays,
		JackpotCount:  s.JackpotCount,
		BigWinCount:   s.BigWinCount,
		SmallWinCount: s.SmallWinCount,
		LoseCount:     s.LoseCount,
		WinRate:       s.WinRate(),
	}
}

func ToHistoryResponse(entries []model.CodeHistoryEntry) game.HistoryResponse {
	history := make([]game.CodeHistoryEntry, len(entries))
	for i, e := range entries {
		history[i] = game.CodeHistoryEntry{
			Code:      e.Code,
			Type:      string(e.Type),
			Timestamp: e.Timestamp,
		}
	}
	return game.HistoryResponse{History: history}
}
