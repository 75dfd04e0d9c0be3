package converter

import (
	"time"

	"slot_game/internal/api/dto/slot"
	"slot_game/internal/model"
)

func ToSymbolDTOs(symbols []model.Symbol) []slot.Symbol {
	if symbols == nil {
		return nil
	}
	result := make([]slot.Symbol, len(symbols))
	for i, s := range symbols {
		result[i] = slot.Symbol{Name: s.Name, Src: s.Src}
	}
	return result
}

func ToSymbols(symbols []slot.Symbol) []model.Symbol {
	if symbols == nil {
		return nil
	}
	result := make([]model.Symbol, len(symbols))
	for i, s := range symbols {
		result[i] = model.Symbol{Name: s.Name, Src: s.Src}
	}
	return result
}

func ToSpinResult(res model.RoundResult) slot.SpinResult {
	return slot.SpinResult{
		Message: res.Message,
		Code:    optionalString(res.Code),
		Type:    string(res.Type),
		Symbols: ToSymbolDTOs(res.Symbols),
	}
}

// ToRoundResult - обратное преобразование ответа сервера на стороне клиента
func ToRoundResult(res slot.SpinResult) model.RoundResult {
	out := model.RoundResult{
		Message: res.Message,
		Type:    model.Outcome(res.Type),
		Symbols: ToSymbols(res.Symbols),
	}
	if res.Code != nil {
		out.Code = *res.Code
	}
	return out
}

func ToVerifyCodeResponse(v model.CodeVerification) slot.VerifyCodeResponse {
	return slot.VerifyCodeResponse{
		Valid:   v.Valid,
		Message: v.Message,
		WinType: string(v.WinType),
	}
}

func ToSlotStatsResponse(s model.Stats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalPlays:    s.TotalPlays,
		JackpotCount:  s.JackpotCount,
		BigWinCount:   s.BigWinCount,
		SmallWinCount: s.SmallWinCount,
		LoseCount:     s.LoseCount,
	}
}

func ToWinHistoryResponse(records []model.WinRecord) slot.WinHistoryResponse {
	history := make([]slot.WinRecord, len(records))
	for i, r := range records {
		history[i] = slot.WinRecord{
			UserID:    r.UserID,
			WinType:   string(r.WinType),
			Code:      optionalString(r.Code),
			Timestamp: FormatTime(r.Timestamp),
		}
	}
	return slot.WinHistoryResponse{History: history}
}

// FormatTime - ISO-8601 в UTC
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
