package assembly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

var ErrInvalidCommandParams = errors.New("invalid loadout command params")

// LoadoutUseCase applies a single equipment or lifecycle command to a bot.
// Commands are idempotent under the request key and the snapshot is saved
// under optimistic versioning. A rejected command (full slots, worker soul
// chip, occupied slot) is a recorded outcome, not an error.
type LoadoutUseCase struct {
	TxManager ports.TxManager
	BotRepo   ports.BotRepository
	ExecRepo  ports.AssemblyExecutionRepository
	EventRepo ports.EventRepository
	Metrics   ports.AssemblyMetrics
	Now       func() time.Time
}

func (u LoadoutUseCase) Execute(ctx context.Context, req LoadoutRequest) (LoadoutResponse, error) {
	req.BotID = strings.TrimSpace(req.BotID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.BotID == "" || req.IdempotencyKey == "" || !req.Command.valid() {
		return LoadoutResponse{}, ErrInvalidRequest
	}
	if !hasValidCommandParams(req) {
		return LoadoutResponse{}, ErrInvalidCommandParams
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out LoadoutResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.ExecRepo.GetByIdempotencyKey(txCtx, req.BotID, req.IdempotencyKey)
		if err == nil && exec != nil {
			return json.Unmarshal(exec.ResultJSON, &out)
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		snap, err := u.BotRepo.GetByID(txCtx, req.BotID)
		if err != nil {
			return err
		}
		target, err := bot.FromSnapshot(snap)
		if err != nil {
			return err
		}

		applied, message, slot, events := applyCommand(target, req, now)
		resp := LoadoutResponse{
			Applied:      applied,
			Message:      message,
			AssignedSlot: slot,
			Events:       events,
		}
		if applied {
			target.Version = snap.Version + 1
			target.UpdatedAt = now
			next := target.Snapshot()
			if err := u.BotRepo.SaveWithVersion(txCtx, next, snap.Version); err != nil {
				return err
			}
			if len(events) > 0 {
				if err := u.EventRepo.Append(txCtx, req.BotID, events); err != nil {
					return err
				}
			}
			resp.Bot = next
		} else {
			resp.Bot = snap
		}

		resultJSON, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		record := ports.AssemblyExecutionRecord{
			BotID:          req.BotID,
			IdempotencyKey: req.IdempotencyKey,
			Command:        string(req.Command),
			ResultJSON:     resultJSON,
			AppliedAt:      now,
		}
		if err := u.ExecRepo.SaveExecution(txCtx, record); err != nil {
			return err
		}

		out = resp
		return nil
	})
	if err != nil {
		u.recordOutcome(err)
		return LoadoutResponse{}, err
	}
	if u.Metrics != nil {
		if out.Applied {
			u.Metrics.RecordSuccess(string(req.Command))
		} else {
			u.Metrics.RecordRejected(string(req.Command))
		}
	}
	return out, nil
}

func (u LoadoutUseCase) recordOutcome(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	u.Metrics.RecordFailure()
}

func hasValidCommandParams(req LoadoutRequest) bool {
	switch req.Command {
	case CommandInstallPart:
		return req.Part != nil
	case CommandInstallChip:
		return req.Chip != nil
	case CommandInstallSoulChip:
		return req.SoulChip != nil
	case CommandRemovePart, CommandRemoveChip:
		return strings.TrimSpace(req.ItemID) != ""
	case CommandAssignPlayer:
		return strings.TrimSpace(req.PlayerID) != ""
	}
	return true
}

func applyCommand(target *bot.Bot, req LoadoutRequest, now time.Time) (bool, string, bot.SlotID, []bot.DomainEvent) {
	switch req.Command {
	case CommandInstallPart:
		part := item.NewPart(*req.Part)
		result := target.InstallPart(part, req.PreferredSlot)
		return commandOutcome(result, req, now, "part_installed", part.ID)
	case CommandRemovePart:
		result := target.RemovePart(req.ItemID)
		return commandOutcome(result, req, now, "part_removed", req.ItemID)
	case CommandInstallChip:
		chip := item.NewExpansionChip(*req.Chip)
		result := target.InstallExpansionChip(chip, req.PreferredSlot)
		return commandOutcome(result, req, now, "chip_installed", chip.ID)
	case CommandRemoveChip:
		result := target.RemoveExpansionChip(req.ItemID)
		return commandOutcome(result, req, now, "chip_removed", req.ItemID)
	case CommandInstallSoulChip:
		soul := item.NewSoulChip(*req.SoulChip)
		result := target.InstallSoulChip(soul)
		return commandOutcome(result, req, now, "soul_chip_installed", soul.ID)
	case CommandAssignPlayer:
		if !target.AssignPlayer(req.PlayerID) {
			return false, fmt.Sprintf("bot %s cannot accept a player assignment", target.ID), "", nil
		}
		return true, "", "", commandEvents(req, now, "player_assigned", req.PlayerID)
	case CommandActivate:
		if !target.Activate(now) {
			return false, fmt.Sprintf("bot %s is not operational", target.ID), "", nil
		}
		return true, "", "", commandEvents(req, now, "bot_activated", "")
	case CommandDeactivate:
		target.Deactivate(now)
		return true, "", "", commandEvents(req, now, "bot_deactivated", "")
	case CommandReset:
		target.Reset(now)
		return true, "", "", commandEvents(req, now, "bot_reset", "")
	}
	return false, "unsupported command", "", nil
}

func commandOutcome(result bot.AssignResult, req LoadoutRequest, now time.Time, eventType, itemID string) (bool, string, bot.SlotID, []bot.DomainEvent) {
	if !result.Success {
		return false, result.Message, "", nil
	}
	return true, result.Message, result.AssignedSlot, commandEvents(req, now, eventType, itemID)
}

func commandEvents(req LoadoutRequest, now time.Time, eventType, subjectID string) []bot.DomainEvent {
	payload := map[string]any{"bot_id": req.BotID}
	if subjectID != "" {
		payload["subject_id"] = subjectID
	}
	return []bot.DomainEvent{{Type: eventType, OccurredAt: now, Payload: payload}}
}
