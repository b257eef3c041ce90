package bot

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

var (
	ErrWorkerSoulChip = errors.New("worker bots cannot have soul chips: they operate with basic AI")
	ErrPlayerRequired = errors.New("bot type requires an assigned player")
)

// Config is the plain construction input for a Bot.
type Config struct {
	ID             string
	Name           string
	Type           BotType
	OwnerID        string
	PlayerID       string
	Skeleton       item.Skeleton
	SoulChip       *item.SoulChip
	Parts          []item.Part
	ExpansionChips []item.ExpansionChip
}

// Bot is the aggregate root: identity, one state variant, the equipment set
// and the slot assignment over the skeleton's layout.
type Bot struct {
	ID             string
	Name           string
	Type           BotType
	OwnerID        string
	PlayerID       string
	Skeleton       item.Skeleton
	SoulChip       *item.SoulChip
	Parts          []item.Part
	ExpansionChips []item.ExpansionChip
	State          State
	Slots          *SlotConfiguration
	Warnings       []string
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBot validates the configuration, selects the state variant for the bot
// type and auto-assigns the supplied equipment. Assignment failures become
// warnings; rule violations abort construction.
func NewBot(cfg Config, now time.Time) (*Bot, error) {
	if cfg.Type == TypeWorker && cfg.SoulChip != nil {
		return nil, ErrWorkerSoulChip
	}
	if requiresPlayer(cfg.Type) && cfg.PlayerID == "" {
		return nil, fmt.Errorf("%w: %s", ErrPlayerRequired, cfg.Type)
	}

	state, err := NewState(cfg.Type, now)
	if err != nil {
		return nil, err
	}

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	b := &Bot{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Type:      cfg.Type,
		OwnerID:   cfg.OwnerID,
		PlayerID:  cfg.PlayerID,
		Skeleton:  cfg.Skeleton,
		SoulChip:  cfg.SoulChip,
		State:     state,
		Slots:     BuildSlotConfiguration(cfg.Skeleton, cfg.Type != TypeWorker),
		Warnings:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	b.noteAssignment(b.Slots.Assign(SlotItem{
		ItemID:   cfg.Skeleton.ID,
		Name:     cfg.Skeleton.Name,
		Category: SlotSkeleton,
	}, ""))
	if cfg.SoulChip != nil {
		b.noteAssignment(b.Slots.Assign(SlotItem{
			ItemID:   cfg.SoulChip.ID,
			Name:     cfg.SoulChip.Name,
			Category: SlotSoulChip,
		}, ""))
	}
	for _, part := range cfg.Parts {
		result := b.Slots.Assign(SlotItem{
			ItemID:   part.ID,
			Name:     part.Name,
			Category: slotCategoryForPart(part.Category),
		}, "")
		if result.Success {
			b.Parts = append(b.Parts, part)
		}
		b.noteAssignment(result)
	}
	for _, chip := range cfg.ExpansionChips {
		result := b.Slots.Assign(SlotItem{
			ItemID:   chip.ID,
			Name:     chip.Name,
			Category: SlotExpansion,
		}, "")
		if result.Success {
			b.ExpansionChips = append(b.ExpansionChips, chip)
		}
		b.noteAssignment(result)
	}

	return b, nil
}

func (b *Bot) noteAssignment(result AssignResult) {
	if !result.Success {
		b.Warnings = append(b.Warnings, result.Message)
	}
}

// InstallPart assigns the part to a slot and records it on success.
func (b *Bot) InstallPart(part item.Part, preferred SlotID) AssignResult {
	result := b.Slots.Assign(SlotItem{
		ItemID:   part.ID,
		Name:     part.Name,
		Category: slotCategoryForPart(part.Category),
	}, preferred)
	if result.Success {
		b.Parts = append(b.Parts, part)
	}
	return result
}

// RemovePart clears the slot holding the part and drops it from the set.
func (b *Bot) RemovePart(itemID string) AssignResult {
	if !b.Slots.Remove(itemID) {
		return AssignResult{Message: fmt.Sprintf("part %s is not installed", itemID)}
	}
	for i, part := range b.Parts {
		if part.ID == itemID {
			b.Parts = append(b.Parts[:i], b.Parts[i+1:]...)
			break
		}
	}
	return AssignResult{Success: true}
}

func (b *Bot) InstallExpansionChip(chip item.ExpansionChip, preferred SlotID) AssignResult {
	result := b.Slots.Assign(SlotItem{
		ItemID:   chip.ID,
		Name:     chip.Name,
		Category: SlotExpansion,
	}, preferred)
	if result.Success {
		b.ExpansionChips = append(b.ExpansionChips, chip)
	}
	return result
}

func (b *Bot) RemoveExpansionChip(itemID string) AssignResult {
	if !b.Slots.Remove(itemID) {
		return AssignResult{Message: fmt.Sprintf("chip %s is not installed", itemID)}
	}
	for i, chip := range b.ExpansionChips {
		if chip.ID == itemID {
			b.ExpansionChips = append(b.ExpansionChips[:i], b.ExpansionChips[i+1:]...)
			break
		}
	}
	return AssignResult{Success: true}
}

// InstallSoulChip honors the worker prohibition as a result value, not an
// error, so batch equipment flows can continue.
func (b *Bot) InstallSoulChip(chip item.SoulChip) AssignResult {
	if b.Type == TypeWorker {
		return AssignResult{Message: ErrWorkerSoulChip.Error()}
	}
	if b.SoulChip != nil {
		return AssignResult{Message: "soul chip slot is occupied"}
	}
	result := b.Slots.Assign(SlotItem{
		ItemID:   chip.ID,
		Name:     chip.Name,
		Category: SlotSoulChip,
	}, "")
	if result.Success {
		b.SoulChip = &chip
	}
	return result
}

// AggregatedStats sums the skeleton base stats and every installed part,
// recomputed on each read.
func (b *Bot) AggregatedStats() item.Stats {
	total := b.Skeleton.BaseStats
	for _, part := range b.Parts {
		total = total.Add(part.Stats)
	}
	return total
}

// CombatPower is monotonic in aggregated stats, chip magnitudes and the
// state's record; higher-rarity equipment strictly raises it.
func (b *Bot) CombatPower() float64 {
	power := float64(b.AggregatedStats().Total())
	for _, chip := range b.ExpansionChips {
		power += chip.EffectMagnitude() * ChipPowerWeight
	}
	if b.SoulChip != nil {
		power += b.SoulChip.BaseEffectMagnitude() * ChipPowerWeight
	}

	switch state := b.State.(type) {
	case *WorkerState:
		power += state.WorkEfficiency() * WorkerPowerWeight
	case *CombatState:
		power += float64(state.BondLevel) * BondPowerWeight
		power += float64(state.BattlesWon) * BattleWinPowerWeight
		power += float64(state.Experience) / ExperiencePowerDivisor
	}
	return power
}

func (b *Bot) IsReadyForCombat() bool {
	return b.CombatPower() >= CombatReadyPowerThreshold && b.State.IsOperational()
}

func requiresPlayer(t BotType) bool {
	return t == TypePlayable || t == TypeKing
}

func (b *Bot) RequiresPlayer() bool {
	return requiresPlayer(b.Type)
}

// CanAssignPlayer reports whether the type accepts a player at all; workers
// accept one optionally, rogue and government bots never do.
func (b *Bot) CanAssignPlayer() bool {
	switch b.Type {
	case TypeRogue, TypeGovBot:
		return false
	}
	return true
}

// AssignPlayer sets the player id when the type allows it, reporting whether
// the assignment took effect.
func (b *Bot) AssignPlayer(playerID string) bool {
	if !b.CanAssignPlayer() || playerID == "" {
		return false
	}
	b.PlayerID = playerID
	return true
}

// StatePatch carries the fields UpdateState merges; nil fields are untouched.
// Numeric targets go through the clamped updaters, status effects replace
// wholesale.
type StatePatch struct {
	EnergyLevel      *float64
	MaintenanceLevel *float64
	Experience       *int
	BondLevel        *int
	Location         *Location
	StatusEffects    []StatusEffect
}

func (b *Bot) UpdateState(patch StatePatch, now time.Time) {
	core := b.State.Core()
	if patch.EnergyLevel != nil {
		core.UpdateEnergy(*patch.EnergyLevel - core.EnergyLevel)
	}
	if patch.MaintenanceLevel != nil {
		core.UpdateMaintenance(*patch.MaintenanceLevel - core.Maintenance)
	}
	if patch.Experience != nil {
		core.AddExperience(*patch.Experience - core.Experience)
	}
	if patch.BondLevel != nil {
		if combat, ok := b.State.(*CombatState); ok {
			combat.UpdateBondLevel(*patch.BondLevel - combat.BondLevel)
		}
	}
	if patch.Location != nil {
		core.Location = *patch.Location
	}
	if patch.StatusEffects != nil {
		core.StatusEffects = append([]StatusEffect{}, patch.StatusEffects...)
	}
	core.Touch(now)
	b.UpdatedAt = now
}

// Activate moves the bot to the idle location; refused when not operational.
func (b *Bot) Activate(now time.Time) bool {
	if !b.State.IsOperational() {
		return false
	}
	core := b.State.Core()
	core.Location = LocationIdle
	core.Touch(now)
	b.UpdatedAt = now
	return true
}

func (b *Bot) Deactivate(now time.Time) {
	core := b.State.Core()
	core.Location = LocationStorage
	core.Touch(now)
	b.UpdatedAt = now
}

type AssemblyReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateAssembly folds the slot report and the bot-level invariants into
// one advisory result.
func (b *Bot) ValidateAssembly() AssemblyReport {
	slotReport := b.Slots.Validate()
	report := AssemblyReport{
		Errors:   append([]string{}, slotReport.Errors...),
		Warnings: append([]string{}, slotReport.Warnings...),
	}

	if b.Type == TypeWorker && b.SoulChip != nil {
		report.Errors = append(report.Errors, ErrWorkerSoulChip.Error())
	}
	if b.RequiresPlayer() && b.PlayerID == "" {
		report.Errors = append(report.Errors, fmt.Sprintf("%s bot has no assigned player", b.Type))
	}
	if !b.CanAssignPlayer() && b.PlayerID != "" {
		report.Errors = append(report.Errors, fmt.Sprintf("%s bot cannot have an assigned player", b.Type))
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// Clone copies the bot under a new id. Equipment values are shared (they are
// immutable snapshots); state is an independent copy.
func (b *Bot) Clone(now time.Time) *Bot {
	clone := &Bot{
		ID:             uuid.NewString(),
		Name:           b.Name,
		Type:           b.Type,
		OwnerID:        b.OwnerID,
		PlayerID:       b.PlayerID,
		Skeleton:       b.Skeleton,
		SoulChip:       b.SoulChip,
		Parts:          append([]item.Part{}, b.Parts...),
		ExpansionChips: append([]item.ExpansionChip{}, b.ExpansionChips...),
		State:          b.State.Clone(),
		Slots:          BuildSlotConfiguration(b.Skeleton, b.Type != TypeWorker),
		Warnings:       []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	clone.reassignAll()
	return clone
}

// Reset restores energy and maintenance to type defaults; experience, bond
// and battle history are preserved.
func (b *Bot) Reset(now time.Time) {
	b.State.Reset()
	b.State.Core().Touch(now)
	b.UpdatedAt = now
}

// reassignAll rebuilds the slot assignment from the equipment lists; used by
// Clone and snapshot rehydration where the layout is known to fit.
func (b *Bot) reassignAll() {
	b.noteAssignment(b.Slots.Assign(SlotItem{ItemID: b.Skeleton.ID, Name: b.Skeleton.Name, Category: SlotSkeleton}, ""))
	if b.SoulChip != nil {
		b.noteAssignment(b.Slots.Assign(SlotItem{ItemID: b.SoulChip.ID, Name: b.SoulChip.Name, Category: SlotSoulChip}, ""))
	}
	for _, part := range b.Parts {
		b.noteAssignment(b.Slots.Assign(SlotItem{ItemID: part.ID, Name: part.Name, Category: slotCategoryForPart(part.Category)}, ""))
	}
	for _, chip := range b.ExpansionChips {
		b.noteAssignment(b.Slots.Assign(SlotItem{ItemID: chip.ID, Name: chip.Name, Category: SlotExpansion}, ""))
	}
}
