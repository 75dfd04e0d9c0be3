package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameConfig_AppendCodeEvictsOldest(t *testing.T) {
	cfg := NewGameConfig(DefaultProbabilities())
	for i := 0; i < 105; i++ {
		cfg.AppendCode(CodeHistoryEntry{Code: fmt.Sprintf("C%d", i), Type: OutcomeBigWin, Timestamp: int64(i)})
		require.LessOrEqual(t, len(cfg.CodeHistory), MaxCodeHistory)
	}

	require.Len(t, cfg.CodeHistory, MaxCodeHistory)
	assert.Equal(t, "C5", cfg.CodeHistory[0].Code)
	assert.Equal(t, "C104", cfg.CodeHistory[MaxCodeHistory-1].Code)
	for i, e := range cfg.CodeHistory {
		assert.Equal(t, int64(i+5), e.Timestamp)
	}
}

func TestGameConfig_ResetKeepsProbabilities(t *testing.T) {
	p := ProbabilityConfig{Jackpot: 3, BigWin: 7, SmallWin: 11, Lose: 13}
	cfg := NewGameConfig(p)
	cfg.Stats = Stats{TotalPlays: 4, JackpotCount: 1, BigWinCount: 1, SmallWinCount: 1, LoseCount: 1}
	cfg.AppendCode(CodeHistoryEntry{Code: "X"})

	cfg.Reset()

	assert.Equal(t, Stats{}, cfg.Stats)
	assert.Empty(t, cfg.CodeHistory)
	assert.NotNil(t, cfg.CodeHistory)
	assert.Equal(t, p, cfg.Probabilities)
}

func TestGameConfig_CloneIsDeep(t *testing.T) {
	cfg := NewGameConfig(DefaultProbabilities())
	cfg.AppendCode(CodeHistoryEntry{Code: "A"})

	cp := cfg.Clone()
	cp.CodeHistory[0].Code = "B"
	cp.Stats.TotalPlays = 9

	assert.Equal(t, "A", cfg.CodeHistory[0].Code)
	assert.Zero(t, cfg.Stats.TotalPlays)
}

func TestStats_Record(t *testing.T) {
	var s Stats
	for _, o := range []Outcome{OutcomeJackpot, OutcomeBigWin, OutcomeBigWin, OutcomeSmallWin, OutcomeLose, OutcomeError} {
		s.Record(o)
	}
	assert.Equal(t, Stats{JackpotCount: 1, BigWinCount: 2, SmallWinCount: 1, LoseCount: 1}, s)
	assert.Equal(t, 4, s.Wins())
}

func TestStats_WinRate(t *testing.T) {
	assert.Zero(t, Stats{}.WinRate())
	assert.InDelta(t, 25.0, Stats{TotalPlays: 8, JackpotCount: 1, SmallWinCount: 1}.WinRate(), 1e-9)
}

func TestOutcome_CodePrefix(t *testing.T) {
	assert.Equal(t, "JP", OutcomeJackpot.CodePrefix())
	assert.Equal(t, "BW", OutcomeBigWin.CodePrefix())
	assert.Equal(t, "SW", OutcomeSmallWin.CodePrefix())
	assert.Empty(t, OutcomeLose.CodePrefix())
	assert.False(t, OutcomeLose.IsWin())
	assert.True(t, OutcomeJackpot.IsWin())
}

func TestSymbols(t *testing.T) {
	syms := Symbols()
	require.Len(t, syms, 7)
	assert.Equal(t, SymbolCherry, syms[0].Name)
	assert.Equal(t, 6, SymbolIndex("seven"))
	assert.Equal(t, -1, SymbolIndex("banana"))

	syms[0].Name = "mutated"
	assert.Equal(t, SymbolCherry, Symbols()[0].Name)
}
