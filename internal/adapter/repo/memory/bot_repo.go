package memory

import (
	"context"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
)

type BotRepo struct {
	store *Store
}

func NewBotRepo(store *Store) BotRepo {
	return BotRepo{store: store}
}

func (r BotRepo) GetByID(ctx context.Context, botID string) (bot.Snapshot, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	snap, ok := r.store.bots[botID]
	if !ok {
		return bot.Snapshot{}, ports.ErrNotFound
	}
	return snap, nil
}

func (r BotRepo) ListByOwner(ctx context.Context, ownerID string) ([]bot.Snapshot, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	var out []bot.Snapshot
	for _, snap := range r.store.bots {
		if snap.OwnerID == ownerID {
			out = append(out, snap)
		}
	}
	return out, nil
}

func (r BotRepo) SaveWithVersion(ctx context.Context, snap bot.Snapshot, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	current, ok := r.store.bots[snap.ID]
	if expectedVersion == 0 {
		if ok {
			return ports.ErrConflict
		}
		r.store.bots[snap.ID] = snap
		return nil
	}
	if !ok || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.bots[snap.ID] = snap
	return nil
}

func (r BotRepo) Delete(ctx context.Context, botID string) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if _, ok := r.store.bots[botID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.bots, botID)
	return nil
}
