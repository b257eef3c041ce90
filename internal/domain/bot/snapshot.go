package bot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

// StateSnapshot is the serializable projection of either state variant.
type StateSnapshot struct {
	Type           StateType         `json:"type"`
	ID             string            `json:"id"`
	EnergyLevel    float64           `json:"energy_level"`
	Maintenance    float64           `json:"maintenance_level"`
	Experience     int               `json:"experience"`
	Location       Location          `json:"current_location"`
	StatusEffects  []StatusEffect    `json:"status_effects"`
	Customizations map[string]string `json:"customizations"`
	LastActivity   time.Time         `json:"last_activity"`
	BondLevel      int               `json:"bond_level,omitempty"`
	BattlesWon     int               `json:"battles_won,omitempty"`
	BattlesLost    int               `json:"battles_lost,omitempty"`
	TotalBattles   int               `json:"total_battles,omitempty"`
}

// Snapshot is the lossless persistence shape of a Bot; repositories map it
// to and from rows.
type Snapshot struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Type           BotType              `json:"bot_type"`
	OwnerID        string               `json:"owner_id,omitempty"`
	PlayerID       string               `json:"player_id,omitempty"`
	Skeleton       item.Skeleton        `json:"skeleton"`
	SoulChip       *item.SoulChip       `json:"soul_chip,omitempty"`
	Parts          []item.Part          `json:"parts"`
	ExpansionChips []item.ExpansionChip `json:"expansion_chips"`
	State          StateSnapshot        `json:"state"`
	Version        int64                `json:"version"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func snapshotState(s State) StateSnapshot {
	core := s.Core()
	out := StateSnapshot{
		Type:           s.StateType(),
		ID:             core.ID,
		EnergyLevel:    core.EnergyLevel,
		Maintenance:    core.Maintenance,
		Experience:     core.Experience,
		Location:       core.Location,
		StatusEffects:  append([]StatusEffect{}, core.StatusEffects...),
		Customizations: map[string]string{},
		LastActivity:   core.LastActivity,
	}
	for k, v := range core.Customizations {
		out.Customizations[k] = v
	}
	if combat, ok := s.(*CombatState); ok {
		out.BondLevel = combat.BondLevel
		out.BattlesWon = combat.BattlesWon
		out.BattlesLost = combat.BattlesLost
		out.TotalBattles = combat.TotalBattles
	}
	return out
}

func stateFromSnapshot(snap StateSnapshot) (State, error) {
	core := CoreState{
		ID:             snap.ID,
		EnergyLevel:    clamp(snap.EnergyLevel, 0, EnergyMax),
		Maintenance:    clamp(snap.Maintenance, 0, MaintenanceMax),
		Experience:     snap.Experience,
		Location:       snap.Location,
		StatusEffects:  append([]StatusEffect{}, snap.StatusEffects...),
		Customizations: map[string]string{},
		LastActivity:   snap.LastActivity,
	}
	for k, v := range snap.Customizations {
		core.Customizations[k] = v
	}

	switch snap.Type {
	case StateWorker:
		return &WorkerState{CoreState: core}, nil
	case StateNonWorker:
		combat := &CombatState{
			CoreState:    core,
			BondLevel:    clampInt(snap.BondLevel, 0, BondLevelMax),
			BattlesWon:   snap.BattlesWon,
			BattlesLost:  snap.BattlesLost,
			TotalBattles: snap.TotalBattles,
		}
		combat.NormalizeBattleRecord()
		return combat, nil
	default:
		return nil, fmt.Errorf("unknown state type: %q", snap.Type)
	}
}

// Snapshot produces the persistence projection of the bot.
func (b *Bot) Snapshot() Snapshot {
	return Snapshot{
		ID:             b.ID,
		Name:           b.Name,
		Type:           b.Type,
		OwnerID:        b.OwnerID,
		PlayerID:       b.PlayerID,
		Skeleton:       b.Skeleton,
		SoulChip:       b.SoulChip,
		Parts:          append([]item.Part{}, b.Parts...),
		ExpansionChips: append([]item.ExpansionChip{}, b.ExpansionChips...),
		State:          snapshotState(b.State),
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromSnapshot rehydrates a bot, rebuilding the slot assignment from the
// equipment lists.
func FromSnapshot(snap Snapshot) (*Bot, error) {
	state, err := stateFromSnapshot(snap.State)
	if err != nil {
		return nil, err
	}
	b := &Bot{
		ID:             snap.ID,
		Name:           snap.Name,
		Type:           snap.Type,
		OwnerID:        snap.OwnerID,
		PlayerID:       snap.PlayerID,
		Skeleton:       snap.Skeleton,
		SoulChip:       snap.SoulChip,
		Parts:          append([]item.Part{}, snap.Parts...),
		ExpansionChips: append([]item.ExpansionChip{}, snap.ExpansionChips...),
		State:          state,
		Slots:          BuildSlotConfiguration(snap.Skeleton, snap.Type != TypeWorker),
		Warnings:       []string{},
		Version:        snap.Version,
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      snap.UpdatedAt,
	}
	b.reassignAll()
	return b, nil
}

// ToJSON is the plain key-value projection of the bot with ISO-8601 dates.
func (b *Bot) ToJSON() map[string]any {
	stateSnap := snapshotState(b.State)
	out := map[string]any{
		"id":              b.ID,
		"name":            b.Name,
		"bot_type":        string(b.Type),
		"skeleton":        b.Skeleton,
		"parts":           append([]item.Part{}, b.Parts...),
		"expansion_chips": append([]item.ExpansionChip{}, b.ExpansionChips...),
		"state":           stateSnap,
		"combat_power":    b.CombatPower(),
		"created_at":      b.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":      b.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if b.OwnerID != "" {
		out["owner_id"] = b.OwnerID
	}
	if b.PlayerID != "" {
		out["player_id"] = b.PlayerID
	}
	if b.SoulChip != nil {
		out["soul_chip"] = *b.SoulChip
	}
	return out
}

// Serialize renders ToJSON as a JSON string.
func (b *Bot) Serialize() (string, error) {
	raw, err := json.Marshal(b.ToJSON())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
