package memory

import (
	"context"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, botID string, events []bot.DomainEvent) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.events[botID] = append(r.store.events[botID], events...)
	return nil
}

func (r EventRepo) ListByBotID(ctx context.Context, botID string, limit int) ([]bot.DomainEvent, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	events := r.store.events[botID]
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}
	out := make([]bot.DomainEvent, limit)
	copy(out, events[len(events)-limit:])
	return out, nil
}
