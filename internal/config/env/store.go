package env

import (
	"fmt"
	"os"
	"strings"

	"slot_game/internal/config"
)

const storeEnvName = "CONFIG_STORE"

type storeConfig struct {
	backend string
}

// NewStoreConfig - хранилище состояния игроков, по умолчанию memory
func NewStoreConfig() (config.StoreConfig, error) {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv(storeEnvName)))
	switch backend {
	case "":
		backend = config.StoreMemory
	case config.StoreMemory, config.StoreRedis, config.StorePostgres:
	default:
		return nil, fmt.Errorf("unknown config store %q", backend)
	}

	return &storeConfig{backend: backend}, nil
}

func (cfg *storeConfig) Backend() string {
	return cfg.backend
}
