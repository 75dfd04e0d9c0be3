package config_repo

import (
	"context"
	"sync"

	"slot_game/internal/model"
	"slot_game/internal/repository"
)

// MemoryStore хранит конфиги в памяти процесса
type MemoryStore struct {
	mtx      sync.RWMutex
	defaults model.ProbabilityConfig
	configs  map[string]*model.GameConfig
}

func NewMemoryStore(defaults model.ProbabilityConfig) *MemoryStore {
	return &MemoryStore{
		defaults: defaults,
		configs:  make(map[string]*model.GameConfig),
	}
}

var _ repository.ConfigStore = (*MemoryStore)(nil)

// Load возвращает копию, чтобы изменения были видны только после Save
func (s *MemoryStore) Load(_ context.Context, playerID string) (*model.GameConfig, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	cfg, ok := s.configs[playerID]
	if !ok {
		return model.NewGameConfig(s.defaults), nil
	}
	return cfg.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, playerID string, cfg *model.GameConfig) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.configs[playerID] = cfg.Clone()
	return nil
}
