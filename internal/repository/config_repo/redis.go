package config_repo

import (
	"context"
	"errors"

	"slot_game/internal/model"
	"slot_game/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slot_game:config:"

// RedisStore хранит конфиг игрока одной JSON-строкой
type RedisStore struct {
	rdb      redis.UniversalClient
	defaults model.ProbabilityConfig
}

func NewRedisStore(rdb redis.UniversalClient, defaults model.ProbabilityConfig) *RedisStore {
	return &RedisStore{
		rdb:      rdb,
		defaults: defaults,
	}
}

var _ repository.ConfigStore = (*RedisStore)(nil)

func configKey(playerID string) string {
	return keyPrefix + playerID
}

func (s *RedisStore) Load(ctx context.Context, playerID string) (*model.GameConfig, error) {
	data, err := s.rdb.Get(ctx, configKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewGameConfig(s.defaults), nil
		}
		return nil, err
	}
	return decode(data, s.defaults)
}

func (s *RedisStore) Save(ctx context.Context, playerID string, cfg *model.GameConfig) error {
	data, err := encode(cfg)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, configKey(playerID), data, 0).Err()
}
