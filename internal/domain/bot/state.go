package bot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the tagged union over the two runtime-condition variants. Every
// consumer switches exhaustively on the concrete type; there is no downcast
// chain beyond the two variants.
type State interface {
	StateType() StateType
	IsOperational() bool
	Core() *CoreState
	Clone() State
	Reset()
}

// CoreState carries the condition fields every bot has regardless of variant.
type CoreState struct {
	ID             string            `json:"id"`
	EnergyLevel    float64           `json:"energy_level"`
	Maintenance    float64           `json:"maintenance_level"`
	Experience     int               `json:"experience"`
	Location       Location          `json:"current_location"`
	StatusEffects  []StatusEffect    `json:"status_effects"`
	Customizations map[string]string `json:"customizations"`
	LastActivity   time.Time         `json:"last_activity"`
}

// NewState builds the variant matching the bot type with its per-type
// defaults. Unknown types are a construction error.
func NewState(botType BotType, now time.Time) (State, error) {
	core := CoreState{
		ID:             uuid.NewString(),
		EnergyLevel:    EnergyMax,
		Maintenance:    MaintenanceMax,
		Location:       LocationIdle,
		StatusEffects:  []StatusEffect{},
		Customizations: map[string]string{},
		LastActivity:   now,
	}

	switch botType {
	case TypeWorker:
		return &WorkerState{CoreState: core}, nil
	case TypePlayable:
		return &CombatState{CoreState: core, BondLevel: PlayableStartingBond}, nil
	case TypeKing:
		core.Experience = KingStartingExperience
		return &CombatState{
			CoreState:    core,
			BondLevel:    KingStartingBond,
			BattlesWon:   KingStartingBattlesWon,
			TotalBattles: KingStartingBattlesWon,
		}, nil
	case TypeRogue:
		return &CombatState{CoreState: core}, nil
	case TypeGovBot:
		return &CombatState{CoreState: core, BondLevel: GovBotStartingBond}, nil
	default:
		return nil, fmt.Errorf("unknown bot type: %q", botType)
	}
}

func (c *CoreState) Core() *CoreState { return c }

// UpdateEnergy applies a signed delta, saturating silently at [0,100].
func (c *CoreState) UpdateEnergy(delta float64) {
	c.EnergyLevel = clamp(c.EnergyLevel+delta, 0, EnergyMax)
}

// UpdateMaintenance applies a signed delta, saturating silently at [0,100].
func (c *CoreState) UpdateMaintenance(delta float64) {
	c.Maintenance = clamp(c.Maintenance+delta, 0, MaintenanceMax)
}

// AddExperience grants experience; negative deltas are ignored so the total
// never decreases.
func (c *CoreState) AddExperience(amount int) {
	if amount > 0 {
		c.Experience += amount
	}
}

// AddStatusEffect upserts by effect id: a duplicate id replaces the previous
// entry in place, keeping ledger order stable.
func (c *CoreState) AddStatusEffect(effect StatusEffect) {
	if effect.ID == "" {
		effect.ID = uuid.NewString()
	}
	for i, existing := range c.StatusEffects {
		if existing.ID == effect.ID {
			c.StatusEffects[i] = effect
			return
		}
	}
	c.StatusEffects = append(c.StatusEffects, effect)
}

func (c *CoreState) RemoveStatusEffect(id string) bool {
	for i, existing := range c.StatusEffects {
		if existing.ID == id {
			c.StatusEffects = append(c.StatusEffects[:i], c.StatusEffects[i+1:]...)
			return true
		}
	}
	return false
}

func (c *CoreState) ActiveEffectsByKind(kind EffectKind) []StatusEffect {
	out := make([]StatusEffect, 0, len(c.StatusEffects))
	for _, effect := range c.StatusEffects {
		if effect.Kind == kind {
			out = append(out, effect)
		}
	}
	return out
}

// EffectiveEnergy is the base level adjusted by boost and drain effects,
// clamped back into range.
func (c *CoreState) EffectiveEnergy() float64 {
	effective := c.EnergyLevel
	for _, effect := range c.StatusEffects {
		switch effect.Kind {
		case EffectEnergyBoost:
			effective += effect.Magnitude
		case EffectEnergyDrain:
			effective -= effect.Magnitude
		}
	}
	return clamp(effective, 0, EnergyMax)
}

func (c *CoreState) Touch(now time.Time) {
	c.LastActivity = now
}

func (c *CoreState) cloneCore() CoreState {
	out := *c
	out.StatusEffects = append([]StatusEffect{}, c.StatusEffects...)
	out.Customizations = make(map[string]string, len(c.Customizations))
	for k, v := range c.Customizations {
		out.Customizations[k] = v
	}
	return out
}

// resetCore restores condition to factory defaults while keeping experience
// and the ledgerless identity fields.
func (c *CoreState) resetCore() {
	c.EnergyLevel = EnergyMax
	c.Maintenance = MaintenanceMax
	c.StatusEffects = []StatusEffect{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
