package bot

import "time"

type BotType string

const (
	TypeWorker   BotType = "worker"
	TypePlayable BotType = "playable"
	TypeKing     BotType = "king"
	TypeRogue    BotType = "rogue"
	TypeGovBot   BotType = "govbot"
)

func (t BotType) Valid() bool {
	switch t {
	case TypeWorker, TypePlayable, TypeKing, TypeRogue, TypeGovBot:
		return true
	}
	return false
}

type StateType string

const (
	StateWorker    StateType = "worker"
	StateNonWorker StateType = "non-worker"
)

type Location string

const (
	LocationIdle           Location = "idle"
	LocationStorage        Location = "storage"
	LocationFactory        Location = "factory"
	LocationBattleArena    Location = "battle_arena"
	LocationTraining       Location = "training"
	LocationMaintenanceBay Location = "maintenance_bay"
)

type EffectKind string

const (
	EffectEnergyBoost    EffectKind = "energy_boost"
	EffectEnergyDrain    EffectKind = "energy_drain"
	EffectFatigue        EffectKind = "fatigue"
	EffectAttackBoost    EffectKind = "attack_boost"
	EffectDefenseBoost   EffectKind = "defense_boost"
	EffectRepairOverTime EffectKind = "repair_over_time"
)

// PermanentEffect marks a status effect with no expiry.
const PermanentEffect = -1

type StatusEffect struct {
	ID              string     `json:"id"`
	Kind            EffectKind `json:"kind"`
	Magnitude       float64    `json:"magnitude"`
	DurationSeconds int        `json:"duration_seconds"`
	Source          string     `json:"source"`
}

type BattleStats struct {
	Won     int     `json:"won"`
	Lost    int     `json:"lost"`
	Total   int     `json:"total"`
	WinRate float64 `json:"win_rate"`
}

type SocialStatus struct {
	ActivityLevel string `json:"activity_level"`
	CombatRating  string `json:"combat_rating"`
}

type WorkReport struct {
	EnergySpent      float64 `json:"energy_spent"`
	ExperienceGained int     `json:"experience_gained"`
	Fatigued         bool    `json:"fatigued"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
