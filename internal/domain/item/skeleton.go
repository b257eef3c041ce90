package item

import "github.com/google/uuid"

type SkeletonType string

const (
	SkeletonLight    SkeletonType = "light"
	SkeletonBalanced SkeletonType = "balanced"
	SkeletonHeavy    SkeletonType = "heavy"
	SkeletonFlying   SkeletonType = "flying"
	SkeletonModular  SkeletonType = "modular"
)

// frame stats per skeleton type, before rarity scaling
var skeletonBaseStats = map[SkeletonType]Stats{
	SkeletonLight:    {Attack: 4, Defense: 3, Speed: 10, Perception: 6, EnergyConsumption: 4},
	SkeletonBalanced: {Attack: 6, Defense: 6, Speed: 6, Perception: 6, EnergyConsumption: 5},
	SkeletonHeavy:    {Attack: 8, Defense: 12, Speed: 3, Perception: 4, EnergyConsumption: 8},
	SkeletonFlying:   {Attack: 5, Defense: 4, Speed: 12, Perception: 8, EnergyConsumption: 9},
	SkeletonModular:  {Attack: 5, Defense: 5, Speed: 5, Perception: 5, EnergyConsumption: 6},
}

// maximum expansion-chip slots a frame can declare
var skeletonMaxExpansionSlots = map[SkeletonType]int{
	SkeletonLight:    2,
	SkeletonBalanced: 3,
	SkeletonHeavy:    4,
	SkeletonFlying:   2,
	SkeletonModular:  6,
}

type Skeleton struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      SkeletonType `json:"type"`
	Rarity    Rarity       `json:"rarity"`
	SlotCount int          `json:"slot_count"`
	BaseStats Stats        `json:"base_stats"`
}

type SkeletonConfig struct {
	ID        string
	Name      string
	Type      SkeletonType
	Rarity    Rarity
	SlotCount int
}

func NewSkeleton(cfg SkeletonConfig) Skeleton {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Rarity == "" {
		cfg.Rarity = RarityCommon
	}
	if _, ok := skeletonBaseStats[cfg.Type]; !ok {
		cfg.Type = SkeletonBalanced
	}
	maxSlots := skeletonMaxExpansionSlots[cfg.Type]
	if cfg.SlotCount < 0 {
		cfg.SlotCount = 0
	}
	if cfg.SlotCount > maxSlots {
		cfg.SlotCount = maxSlots
	}

	base := skeletonBaseStats[cfg.Type]
	mult := cfg.Rarity.statMultiplier()
	return Skeleton{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Type:      cfg.Type,
		Rarity:    cfg.Rarity,
		SlotCount: cfg.SlotCount,
		BaseStats: Stats{
			Attack:            scaleStat(base.Attack, mult),
			Defense:           scaleStat(base.Defense, mult),
			Speed:             scaleStat(base.Speed, mult),
			Perception:        scaleStat(base.Perception, mult),
			EnergyConsumption: base.EnergyConsumption,
		},
	}
}

// ExpansionSlotCount is the number of expansion slots the frame actually
// exposes, never above the per-type ceiling.
func (s Skeleton) ExpansionSlotCount() int {
	max := skeletonMaxExpansionSlots[s.Type]
	if s.SlotCount > max {
		return max
	}
	if s.SlotCount < 0 {
		return 0
	}
	return s.SlotCount
}

func scaleStat(base int, mult float64) int {
	return int(float64(base) * mult)
}
