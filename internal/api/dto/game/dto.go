package game

type Symbol struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

type SymbolsResponse struct {
	Symbols []Symbol `json:"symbols"`
}

type CheckRequest struct {
	Symbols []string `json:"symbols"` // ровно 3 имени символов
}

type RoundResponse struct {
	Message string   `json:"message"`
	Code    *string  `json:"code"`
	Type    string   `json:"type"`
	Symbols []Symbol `json:"symbols"`
}

type VerifyRequest struct {
	Code string `json:"code"`
}

type VerifyResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

type Probabilities struct {
	Jackpot  float64 `json:"jackpot"`
	BigWin   float64 `json:"bigWin"`
	SmallWin float64 `json:"smallWin"`
	Lose     float64 `json:"lose"`
}

// UpdateProbabilitiesRequest - веса заменяются целиком, все четыре поля обязательны
type UpdateProbabilitiesRequest struct {
	Jackpot  *float64 `json:"jackpot"`
	BigWin   *float64 `json:"bigWin"`
	SmallWin *float64 `json:"smallWin"`
	Lose     *float64 `json:"lose"`
}

type StatsResponse struct {
	TotalPlays    int     `json:"totalPlays"`
	JackpotCount  int     `json:"jackpotCount"`
	BigWinCount   int     `json:"bigWinCount"`
	SmallWinCount int     `json:"smallWinCount"`
	LoseCount     int     `json:"loseCount"`
	WinRate       float64 `json:"winRate"` // проценты
}

type CodeHistoryEntry struct {
	Code      string `json:"code"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // epoch ms
}

type HistoryResponse struct {
	History []CodeHistoryEntry `json:"history"`
}
