package roster

import (
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

type StatusRequest struct {
	BotID string
}

type StatusResponse struct {
	Bot            bot.Snapshot       `json:"bot"`
	Stats          item.Stats         `json:"stats"`
	CombatPower    float64            `json:"combat_power"`
	ReadyForCombat bool               `json:"ready_for_combat"`
	Assembly       bot.AssemblyReport `json:"assembly"`
	Slots          []bot.SlotView     `json:"slots"`
	RecentEvents   []bot.DomainEvent  `json:"recent_events,omitempty"`
}

type ListRequest struct {
	OwnerID string
}

type ListEntry struct {
	Bot            bot.Snapshot `json:"bot"`
	CombatPower    float64      `json:"combat_power"`
	ReadyForCombat bool         `json:"ready_for_combat"`
}

type ListResponse struct {
	Bots []ListEntry `json:"bots"`
}
