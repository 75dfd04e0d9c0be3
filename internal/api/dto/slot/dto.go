package slot

type SpinRequest struct {
	UserID string `json:"user_id"`
}

type Symbol struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

type SpinResult struct {
	Message string   `json:"message"`
	Code    *string  `json:"code"`    // null для проигрыша и ошибок
	Type    string   `json:"type"`    // jackpot, bigWin, smallWin, lose, played, error
	Symbols []Symbol `json:"symbols"` // null, если символов нет
}

type SpinResponse struct {
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
	Result  SpinResult `json:"result"`
}

type VerifyCodeRequest struct {
	Code string `json:"code"`
}

type VerifyCodeResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	WinType string `json:"win_type,omitempty"`
}

type StatsResponse struct {
	TotalPlays    int `json:"totalPlays"`
	JackpotCount  int `json:"jackpotCount"`
	BigWinCount   int `json:"bigWinCount"`
	SmallWinCount int `json:"smallWinCount"`
	LoseCount     int `json:"loseCount"`
}

type WinRecord struct {
	UserID    string  `json:"user_id"`
	WinType   string  `json:"win_type"`
	Code      *string `json:"code"`
	Timestamp string  `json:"timestamp"` // ISO-8601, UTC
}

type WinHistoryResponse struct {
	History []WinRecord `json:"history"`
}
