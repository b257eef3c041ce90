package item

import "github.com/google/uuid"

type PartCategory string

const (
	PartHead     PartCategory = "head"
	PartTorso    PartCategory = "torso"
	PartArmLeft  PartCategory = "arm_left"
	PartArmRight PartCategory = "arm_right"
	PartLegs     PartCategory = "legs"
)

var PartCategories = []PartCategory{PartHead, PartTorso, PartArmLeft, PartArmRight, PartLegs}

// stat profile per category, before rarity scaling
var partBaseStats = map[PartCategory]Stats{
	PartHead:     {Attack: 1, Defense: 2, Speed: 1, Perception: 6, EnergyConsumption: 2},
	PartTorso:    {Attack: 2, Defense: 7, Speed: 1, Perception: 1, EnergyConsumption: 3},
	PartArmLeft:  {Attack: 6, Defense: 2, Speed: 2, Perception: 1, EnergyConsumption: 3},
	PartArmRight: {Attack: 6, Defense: 2, Speed: 2, Perception: 1, EnergyConsumption: 3},
	PartLegs:     {Attack: 2, Defense: 3, Speed: 6, Perception: 1, EnergyConsumption: 3},
}

func (c PartCategory) Valid() bool {
	_, ok := partBaseStats[c]
	return ok
}

type Part struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category PartCategory `json:"category"`
	Rarity   Rarity       `json:"rarity"`
	Stats    Stats        `json:"stats"`
}

type PartConfig struct {
	ID       string
	Name     string
	Category PartCategory
	Rarity   Rarity
}

func NewPart(cfg PartConfig) Part {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Rarity == "" {
		cfg.Rarity = RarityCommon
	}
	if !cfg.Category.Valid() {
		cfg.Category = PartTorso
	}

	base := partBaseStats[cfg.Category]
	mult := cfg.Rarity.statMultiplier()
	return Part{
		ID:       cfg.ID,
		Name:     cfg.Name,
		Category: cfg.Category,
		Rarity:   cfg.Rarity,
		Stats: Stats{
			Attack:            scaleStat(base.Attack, mult),
			Defense:           scaleStat(base.Defense, mult),
			Speed:             scaleStat(base.Speed, mult),
			Perception:        scaleStat(base.Perception, mult),
			EnergyConsumption: base.EnergyConsumption,
		},
	}
}

func (p Part) BaseEffectMagnitude() float64 {
	return p.Rarity.BaseMagnitude()
}
