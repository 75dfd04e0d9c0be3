package env

import (
	"fmt"
	"os"

	"slot_game/internal/config"
	"slot_game/internal/model"

	"gopkg.in/yaml.v3"
)

type slotYAML struct {
	Game struct {
		DefaultProbabilities *model.ProbabilityConfig `yaml:"default_probabilities"`
	} `yaml:"game"`
	Slot struct {
		DefaultSlotType model.SlotType                             `yaml:"default_slot_type"`
		Presets         map[model.SlotType]model.ProbabilityConfig `yaml:"presets"`
	} `yaml:"slot"`
}

type slotConfig struct {
	defaults        model.ProbabilityConfig
	defaultSlotType model.SlotType
	presets         map[model.SlotType]model.ProbabilityConfig
}

// Пресеты сетевого варианта, если в файле их нет
var defaultPresets = map[model.SlotType]model.ProbabilityConfig{
	model.SlotTypeA: {Jackpot: 10.0, BigWin: 20.0, SmallWin: 30.0, Lose: 40.0},
	model.SlotTypeB: {Jackpot: 1.0, BigWin: 5.0, SmallWin: 15.0, Lose: 79.0},
}

// NewSlotConfigFromYAML читает веса и пресеты из yaml-файла
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseSlotConfig(data)
}

func ParseSlotConfig(data []byte) (config.SlotConfig, error) {
	var raw slotYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}

	cfg := &slotConfig{
		defaults:        model.DefaultProbabilities(),
		defaultSlotType: model.SlotTypeA,
		presets:         make(map[model.SlotType]model.ProbabilityConfig, len(defaultPresets)),
	}
	for k, v := range defaultPresets {
		cfg.presets[k] = v
	}

	if raw.Game.DefaultProbabilities != nil {
		cfg.defaults = *raw.Game.DefaultProbabilities
	}
	for slotType, p := range raw.Slot.Presets {
		if !slotType.Valid() {
			return nil, fmt.Errorf("unknown slot type %q in presets", slotType)
		}
		cfg.presets[slotType] = p
	}
	if raw.Slot.DefaultSlotType != "" {
		if !raw.Slot.DefaultSlotType.Valid() {
			return nil, fmt.Errorf("unknown default slot type %q", raw.Slot.DefaultSlotType)
		}
		cfg.defaultSlotType = raw.Slot.DefaultSlotType
	}

	return cfg, nil
}

func (c *slotConfig) DefaultProbabilities() model.ProbabilityConfig {
	return c.defaults
}

// Preset для неизвестного типа возвращает пресет по умолчанию
func (c *slotConfig) Preset(slotType model.SlotType) model.ProbabilityConfig {
	if p, ok := c.presets[slotType]; ok {
		return p
	}
	return c.presets[c.defaultSlotType]
}

func (c *slotConfig) DefaultSlotType() model.SlotType {
	return c.defaultSlotType
}
