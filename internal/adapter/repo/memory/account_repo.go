package memory

import (
	"context"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/account"
)

type AccountRepo struct {
	store *Store
}

func NewAccountRepo(store *Store) AccountRepo {
	return AccountRepo{store: store}
}

func (r AccountRepo) GetByID(ctx context.Context, accountID string) (account.PlayerAccount, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	acct, ok := r.store.accounts[accountID]
	if !ok {
		return account.PlayerAccount{}, ports.ErrNotFound
	}
	return acct, nil
}

func (r AccountRepo) SaveWithVersion(ctx context.Context, acct account.PlayerAccount, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	current, ok := r.store.accounts[acct.ID]
	if expectedVersion == 0 {
		if ok {
			return ports.ErrConflict
		}
		r.store.accounts[acct.ID] = acct
		return nil
	}
	if !ok || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.accounts[acct.ID] = acct
	return nil
}
