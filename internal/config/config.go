package config

import (
	"time"

	"slot_game/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Хранилища GameConfig
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type SlotConfig interface {
	// DefaultProbabilities - веса для нового игрока локального варианта
	DefaultProbabilities() model.ProbabilityConfig
	// Preset - веса исхода для типа слота сетевого варианта
	Preset(slotType model.SlotType) model.ProbabilityConfig
	DefaultSlotType() model.SlotType
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type StoreConfig interface {
	Backend() string
}

type AdminTokenConfig interface {
	SecretKey() []byte
	TokenDuration() time.Duration
}

type LineBotConfig interface {
	ChannelAccessToken() string
	ChannelSecret() string
	PublicBaseURL() string
}

type RateLimitConfig interface {
	RequestsPerSecond() float64
	Burst() int
}
