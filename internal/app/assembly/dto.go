package assembly

import (
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

type CreateRequest struct {
	Name           string                     `json:"name"`
	BotType        bot.BotType                `json:"bot_type"`
	OwnerID        string                     `json:"owner_id,omitempty"`
	PlayerID       string                     `json:"player_id,omitempty"`
	Skeleton       item.SkeletonConfig        `json:"skeleton"`
	SoulChip       *item.SoulChipConfig       `json:"soul_chip,omitempty"`
	Parts          []item.PartConfig          `json:"parts,omitempty"`
	ExpansionChips []item.ExpansionChipConfig `json:"expansion_chips,omitempty"`
}

type CreateResponse struct {
	Bot      bot.Snapshot `json:"bot"`
	Warnings []string     `json:"warnings"`
}

type Command string

const (
	CommandInstallPart     Command = "install_part"
	CommandRemovePart      Command = "remove_part"
	CommandInstallChip     Command = "install_chip"
	CommandRemoveChip      Command = "remove_chip"
	CommandInstallSoulChip Command = "install_soul_chip"
	CommandAssignPlayer    Command = "assign_player"
	CommandActivate        Command = "activate"
	CommandDeactivate      Command = "deactivate"
	CommandReset           Command = "reset"
)

func (c Command) valid() bool {
	switch c {
	case CommandInstallPart, CommandRemovePart, CommandInstallChip, CommandRemoveChip,
		CommandInstallSoulChip, CommandAssignPlayer, CommandActivate, CommandDeactivate, CommandReset:
		return true
	}
	return false
}

type LoadoutRequest struct {
	BotID          string                    `json:"bot_id"`
	IdempotencyKey string                    `json:"idempotency_key"`
	Command        Command                   `json:"command"`
	Part           *item.PartConfig          `json:"part,omitempty"`
	Chip           *item.ExpansionChipConfig `json:"chip,omitempty"`
	SoulChip       *item.SoulChipConfig      `json:"soul_chip,omitempty"`
	ItemID         string                    `json:"item_id,omitempty"`
	PreferredSlot  bot.SlotID                `json:"preferred_slot,omitempty"`
	PlayerID       string                    `json:"player_id,omitempty"`
}

type LoadoutResponse struct {
	Applied      bool              `json:"applied"`
	Message      string            `json:"message,omitempty"`
	AssignedSlot bot.SlotID        `json:"assigned_slot,omitempty"`
	Bot          bot.Snapshot      `json:"bot"`
	Events       []bot.DomainEvent `json:"events,omitempty"`
}
