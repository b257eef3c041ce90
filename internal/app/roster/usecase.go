package roster

import (
	"context"
	"errors"
	"strings"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
)

var ErrInvalidRequest = errors.New("invalid roster request")

const recentEventLimit = 20

// UseCase serves read-only bot views: the persisted snapshot enriched with
// derived stats, combat power, the advisory assembly report and the slot
// layout for rendering.
type UseCase struct {
	BotRepo   ports.BotRepository
	EventRepo ports.EventRepository
}

func (u UseCase) Status(ctx context.Context, req StatusRequest) (StatusResponse, error) {
	if strings.TrimSpace(req.BotID) == "" {
		return StatusResponse{}, ErrInvalidRequest
	}
	snap, err := u.BotRepo.GetByID(ctx, req.BotID)
	if err != nil {
		return StatusResponse{}, err
	}
	target, err := bot.FromSnapshot(snap)
	if err != nil {
		return StatusResponse{}, err
	}

	resp := StatusResponse{
		Bot:            snap,
		Stats:          target.AggregatedStats(),
		CombatPower:    target.CombatPower(),
		ReadyForCombat: target.IsReadyForCombat(),
		Assembly:       target.ValidateAssembly(),
		Slots:          target.Slots.Visualize(),
	}
	if u.EventRepo != nil {
		events, err := u.EventRepo.ListByBotID(ctx, req.BotID, recentEventLimit)
		if err != nil {
			return StatusResponse{}, err
		}
		resp.RecentEvents = events
	}
	return resp, nil
}

func (u UseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	if strings.TrimSpace(req.OwnerID) == "" {
		return ListResponse{}, ErrInvalidRequest
	}
	snaps, err := u.BotRepo.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return ListResponse{}, err
	}
	out := ListResponse{Bots: make([]ListEntry, 0, len(snaps))}
	for _, snap := range snaps {
		target, err := bot.FromSnapshot(snap)
		if err != nil {
			return ListResponse{}, err
		}
		out.Bots = append(out.Bots, ListEntry{
			Bot:            snap,
			CombatPower:    target.CombatPower(),
			ReadyForCombat: target.IsReadyForCombat(),
		})
	}
	return out, nil
}
