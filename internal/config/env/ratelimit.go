package env

import (
	"fmt"
	"os"
	"strconv"

	"slot_game/internal/config"
)

const (
	spinRateEnvName  = "SPIN_RATE_LIMIT"
	spinBurstEnvName = "SPIN_RATE_BURST"
)

type rateLimitConfig struct {
	rps   float64
	burst int
}

// NewRateLimitConfig - лимит запросов на спин с одного IP. 0 отключает ограничение.
func NewRateLimitConfig() (config.RateLimitConfig, error) {
	cfg := &rateLimitConfig{rps: 5, burst: 10}

	if raw := os.Getenv(spinRateEnvName); len(raw) > 0 {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("invalid %s: %q", spinRateEnvName, raw)
		}
		cfg.rps = rps
	}
	if raw := os.Getenv(spinBurstEnvName); len(raw) > 0 {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst < 0 {
			return nil, fmt.Errorf("invalid %s: %q", spinBurstEnvName, raw)
		}
		cfg.burst = burst
	}

	return cfg, nil
}

func (c *rateLimitConfig) RequestsPerSecond() float64 { return c.rps }
func (c *rateLimitConfig) Burst() int                 { return c.burst }
