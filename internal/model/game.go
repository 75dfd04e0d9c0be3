package model

// MaxCodeHistory - сколько последних кодов хранится в истории
const MaxCodeHistory = 100

// ProbabilityConfig веса исходов. Сумма не обязана быть равна 100.
type ProbabilityConfig struct {
	Jackpot  float64 `json:"jackpot" yaml:"jackpot"`
	BigWin   float64 `json:"bigWin" yaml:"big_win"`
	SmallWin float64 `json:"smallWin" yaml:"small_win"`
	Lose     float64 `json:"lose" yaml:"lose"`
}

func DefaultProbabilities() ProbabilityConfig {
	return ProbabilityConfig{
		Jackpot:  1.0,
		BigWin:   5.0,
		SmallWin: 15.0,
		Lose:     79.0,
	}
}

func (p ProbabilityConfig) Total() float64 {
	return p.Jackpot + p.BigWin + p.SmallWin + p.Lose
}

type Stats struct {
	TotalPlays    int `json:"totalPlays"`
	JackpotCount  int `json:"jackpotCount"`
	BigWinCount   int `json:"bigWinCount"`
	SmallWinCount int `json:"smallWinCount"`
	LoseCount     int `json:"loseCount"`
}

// Record увеличивает счётчик исхода. Неизвестные исходы игнорируются.
func (s *Stats) Record(o Outcome) {
	switch o {
	case OutcomeJackpot:
		s.JackpotCount++
	case OutcomeBigWin:
		s.BigWinCount++
	case OutcomeSmallWin:
		s.SmallWinCount++
	case OutcomeLose:
		s.LoseCount++
	}
}

func (s Stats) Wins() int {
	return s.JackpotCount + s.BigWinCount + s.SmallWinCount
}

// WinRate - процент выигрышей от TotalPlays, 0 если игр не было
func (s Stats) WinRate() float64 {
	if s.TotalPlays <= 0 {
		return 0
	}
	return float64(s.Wins()) / float64(s.TotalPlays) * 100
}

type CodeHistoryEntry struct {
	Code      string  `json:"code"`
	Type      Outcome `json:"type"`
	Timestamp int64   `json:"timestamp"` // epoch ms
}

// GameConfig - состояние одного игрока: веса, счётчики и история кодов
type GameConfig struct {
	Probabilities ProbabilityConfig  `json:"probabilities"`
	Stats         Stats              `json:"stats"`
	CodeHistory   []CodeHistoryEntry `json:"codeHistory"`
}

func NewGameConfig(p ProbabilityConfig) *GameConfig {
	return &GameConfig{
		Probabilities: p,
		CodeHistory:   make([]CodeHistoryEntry, 0),
	}
}

// AppendCode добавляет код в конец истории и вытесняет самые старые записи сверх MaxCodeHistory
func (c *GameConfig) AppendCode(e CodeHistoryEntry) {
	c.CodeHistory = append(c.CodeHistory, e)
	if over := len(c.CodeHistory) - MaxCodeHistory; over > 0 {
		kept := make([]CodeHistoryEntry, MaxCodeHistory)
		copy(kept, c.CodeHistory[over:])
		c.CodeHistory = kept
	}
}

// Reset обнуляет счётчики и историю, веса не трогает
func (c *GameConfig) Reset() {
	c.Stats = Stats{}
	c.CodeHistory = make([]CodeHistoryEntry, 0)
}

func (c *GameConfig) Clone() *GameConfig {
	out := *c
	out.CodeHistory = make([]CodeHistoryEntry, len(c.CodeHistory))
	copy(out.CodeHistory, c.CodeHistory)
	return &out
}

// RoundResult - результат проверки раунда
type RoundResult struct {
	Message string
	Code    string // пусто, если кода нет
	Type    Outcome
	Symbols []Symbol
}
