package assembly

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

var ErrInvalidRequest = errors.New("invalid assembly request")

// CreateUseCase builds a bot from a configuration and persists its first
// snapshot. Construction-rule violations surface as errors; failed equipment
// auto-assignments are warnings on the response.
type CreateUseCase struct {
	TxManager ports.TxManager
	BotRepo   ports.BotRepository
	EventRepo ports.EventRepository
	Metrics   ports.AssemblyMetrics
	Now       func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !req.BotType.Valid() {
		return CreateResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	cfg := bot.Config{
		Name:     req.Name,
		Type:     req.BotType,
		OwnerID:  req.OwnerID,
		PlayerID: req.PlayerID,
		Skeleton: item.NewSkeleton(req.Skeleton),
	}
	if req.SoulChip != nil {
		soul := item.NewSoulChip(*req.SoulChip)
		cfg.SoulChip = &soul
	}
	for _, partCfg := range req.Parts {
		cfg.Parts = append(cfg.Parts, item.NewPart(partCfg))
	}
	for _, chipCfg := range req.ExpansionChips {
		cfg.ExpansionChips = append(cfg.ExpansionChips, item.NewExpansionChip(chipCfg))
	}

	built, err := bot.NewBot(cfg, now)
	if err != nil {
		u.recordFailure()
		return CreateResponse{}, err
	}
	built.Version = 1

	var out CreateResponse
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snap := built.Snapshot()
		if err := u.BotRepo.SaveWithVersion(txCtx, snap, 0); err != nil {
			return err
		}
		events := []bot.DomainEvent{{
			Type:       "bot_created",
			OccurredAt: now,
			Payload: map[string]any{
				"bot_id":   built.ID,
				"bot_type": string(built.Type),
				"name":     built.Name,
			},
		}}
		if err := u.EventRepo.Append(txCtx, built.ID, events); err != nil {
			return err
		}
		out = CreateResponse{Bot: snap, Warnings: append([]string{}, built.Warnings...)}
		return nil
	})
	if err != nil {
		u.recordOutcome(err)
		return CreateResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("create")
	}
	return out, nil
}

func (u CreateUseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}

func (u CreateUseCase) recordOutcome(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	u.Metrics.RecordFailure()
}
