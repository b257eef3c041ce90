package item

import (
	"math"

	"github.com/google/uuid"
)

type ChipEffect string

const (
	ChipAttackBuff       ChipEffect = "attack_buff"
	ChipDefenseBuff      ChipEffect = "defense_buff"
	ChipSpeedBuff        ChipEffect = "speed_buff"
	ChipAIUpgrade        ChipEffect = "ai_upgrade"
	ChipEnergyEfficiency ChipEffect = "energy_efficiency"
)

const upgradeBonusPerLevel = 0.02

const (
	chipBaseUpgradeCost = 100.0
	chipBaseEnergyCost  = 5.0
)

// ExpansionChip is the one equipment kind with mutable state: its upgrade
// level. Everything else is fixed at forge time.
type ExpansionChip struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Effect       ChipEffect `json:"effect"`
	Rarity       Rarity     `json:"rarity"`
	UpgradeLevel int        `json:"upgrade_level"`
}

type ExpansionChipConfig struct {
	ID           string
	Name         string
	Effect       ChipEffect
	Rarity       Rarity
	UpgradeLevel int
}

func NewExpansionChip(cfg ExpansionChipConfig) ExpansionChip {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Rarity == "" {
		cfg.Rarity = RarityCommon
	}
	if cfg.Effect == "" {
		cfg.Effect = ChipAttackBuff
	}
	if cfg.UpgradeLevel < 0 {
		cfg.UpgradeLevel = 0
	}
	if max := cfg.Rarity.MaxUpgradeLevel(); cfg.UpgradeLevel > max {
		cfg.UpgradeLevel = max
	}
	return ExpansionChip{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Effect:       cfg.Effect,
		Rarity:       cfg.Rarity,
		UpgradeLevel: cfg.UpgradeLevel,
	}
}

func (c ExpansionChip) BaseEffectMagnitude() float64 {
	return c.Rarity.BaseMagnitude()
}

func (c ExpansionChip) UpgradeBonus() float64 {
	return float64(c.UpgradeLevel) * upgradeBonusPerLevel
}

// EffectMagnitude is the total contribution: rarity base plus upgrade bonus.
func (c ExpansionChip) EffectMagnitude() float64 {
	return c.BaseEffectMagnitude() + c.UpgradeBonus()
}

func (c ExpansionChip) MaxUpgradeLevel() int {
	return c.Rarity.MaxUpgradeLevel()
}

// Upgrade bumps the level by one, reporting whether it applied.
func (c *ExpansionChip) Upgrade() bool {
	if c.UpgradeLevel >= c.MaxUpgradeLevel() {
		return false
	}
	c.UpgradeLevel++
	return true
}

// UpgradeCost grows exponentially in rarity and in the next level, so each
// step is strictly more expensive than the last.
func (c ExpansionChip) UpgradeCost() int {
	rarityMult := math.Pow(1.5, float64(maxIndex(c.Rarity)))
	levelMult := math.Pow(1.25, float64(c.UpgradeLevel))
	return int(math.Round(chipBaseUpgradeCost * rarityMult * levelMult))
}

// EnergyCost is the steady-state energy draw of the chip while installed.
func (c ExpansionChip) EnergyCost() float64 {
	rarityMult := 1.0 + 0.5*float64(maxIndex(c.Rarity))
	levelMult := 1.0 + 0.1*float64(c.UpgradeLevel)
	return chipBaseEnergyCost * rarityMult * levelMult
}

// ConflictsWith is an extension point for concrete chip lines; the base
// catalog has no conflicting pairs.
func (c ExpansionChip) ConflictsWith(other ExpansionChip) bool {
	return false
}

// SynergyBonus is an extension point for concrete chip lines; the base
// catalog grants none.
func (c ExpansionChip) SynergyBonus(others []ExpansionChip) float64 {
	return 0
}

func maxIndex(r Rarity) int {
	if idx := r.Index(); idx >= 0 {
		return idx
	}
	return 0
}
