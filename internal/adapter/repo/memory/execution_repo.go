package memory

import (
	"context"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
)

type AssemblyExecutionRepo struct {
	store *Store
}

func NewAssemblyExecutionRepo(store *Store) AssemblyExecutionRepo {
	return AssemblyExecutionRepo{store: store}
}

func (r AssemblyExecutionRepo) GetByIdempotencyKey(ctx context.Context, botID, key string) (*ports.AssemblyExecutionRecord, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	rec, ok := r.store.executions[execKey(botID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r AssemblyExecutionRepo) SaveExecution(ctx context.Context, record ports.AssemblyExecutionRecord) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	k := execKey(record.BotID, record.IdempotencyKey)
	if _, exists := r.store.executions[k]; exists {
		return ports.ErrConflict
	}
	r.store.executions[k] = record
	return nil
}
