package env

import (
	"fmt"
	"os"
	"time"

	"slot_game/internal/config"
)

const (
	adminTokenKeyEnvName      = "ADMIN_TOKEN_SECRET"
	adminTokenDurationEnvName = "ADMIN_TOKEN_DURATION"

	defaultAdminTokenDuration = 24 * time.Hour
)

type adminTokenConfig struct {
	secretKey string
	duration  time.Duration
}

func NewAdminTokenConfig() (config.AdminTokenConfig, error) {
	secretKey := os.Getenv(adminTokenKeyEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("admin token secret key not found")
	}

	duration := defaultAdminTokenDuration
	if raw := os.Getenv(adminTokenDurationEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid admin token duration: %w", err)
		}
		duration = parsed
	}

	return &adminTokenConfig{
		secretKey: secretKey,
		duration:  duration,
	}, nil
}

func (a *adminTokenConfig) SecretKey() []byte {
	return []byte(a.secretKey)
}

func (a *adminTokenConfig) TokenDuration() time.Duration {
	return a.duration
}
