package memory

import (
	"context"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/inventory"
)

type StackRepo struct {
	store *Store
}

func NewStackRepo(store *Store) StackRepo {
	return StackRepo{store: store}
}

func (r StackRepo) GetByOwnerAndKind(ctx context.Context, ownerID, itemKind string) (inventory.Stack, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	stack, ok := r.store.stacks[stackKey(ownerID, itemKind)]
	if !ok {
		return inventory.Stack{}, ports.ErrNotFound
	}
	return stack, nil
}

func (r StackRepo) SaveWithVersion(ctx context.Context, stack inventory.Stack, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	key := stackKey(stack.OwnerID, stack.ItemKind)
	current, ok := r.store.stacks[key]
	if expectedVersion == 0 {
		if ok {
			return ports.ErrConflict
		}
		r.store.stacks[key] = stack
		return nil
	}
	if !ok || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.stacks[key] = stack
	return nil
}
