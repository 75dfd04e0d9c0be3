package config_repo

import (
	"fmt"

	"slot_game/internal/model"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encode(cfg *model.GameConfig) ([]byte, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode game config: %w", err)
	}
	return data, nil
}

// decode накладывает сохранённые данные на конфиг по умолчанию
func decode(data []byte, defaults model.ProbabilityConfig) (*model.GameConfig, error) {
	cfg := model.NewGameConfig(defaults)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode game config: %w", err)
	}
	if cfg.CodeHistory == nil {
		cfg.CodeHistory = make([]model.CodeHistoryEntry, 0)
	}
	return cfg, nil
}
