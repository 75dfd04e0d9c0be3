package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"slot_game/internal/config"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
)

type redisConfig struct {
	addr     string
	password string
	db       int
}

func NewRedisConfig() (config.RedisConfig, error) {
	addr := os.Getenv(redisAddrEnvName)
	if len(addr) == 0 {
		return nil, errors.New("redis address not found")
	}

	db := 0
	if raw := os.Getenv(redisDBEnvName); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		db = parsed
	}

	return &redisConfig{
		addr:     addr,
		password: os.Getenv(redisPasswordEnvName),
		db:       db,
	}, nil
}

func (cfg *redisConfig) Addr() string     { return cfg.addr }
func (cfg *redisConfig) Password() string { return cfg.password }
func (cfg *redisConfig) DB() int          { return cfg.db }
