package item

import "github.com/google/uuid"

// SoulChip is the personality core of a non-worker bot. It is immutable once
// forged; learning progress lives on the bot state, not here.
type SoulChip struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rarity       Rarity  `json:"rarity"`
	Personality  string  `json:"personality"`
	LearningRate float64 `json:"learning_rate"`
}

type SoulChipConfig struct {
	ID          string
	Name        string
	Rarity      Rarity
	Personality string
}

func NewSoulChip(cfg SoulChipConfig) SoulChip {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Rarity == "" {
		cfg.Rarity = RarityCommon
	}
	if cfg.Personality == "" {
		cfg.Personality = "neutral"
	}
	return SoulChip{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Rarity:       cfg.Rarity,
		Personality:  cfg.Personality,
		LearningRate: cfg.Rarity.BaseMagnitude(),
	}
}

func (c SoulChip) BaseEffectMagnitude() float64 {
	return c.Rarity.BaseMagnitude()
}
