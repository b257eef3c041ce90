package memory

import (
	"context"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/trade"
)

type OfferRepo struct {
	store *Store
}

func NewOfferRepo(store *Store) OfferRepo {
	return OfferRepo{store: store}
}

func (r OfferRepo) GetByID(ctx context.Context, offerID string) (trade.Offer, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	offer, ok := r.store.offers[offerID]
	if !ok {
		return trade.Offer{}, ports.ErrNotFound
	}
	return offer, nil
}

func (r OfferRepo) ListOpen(ctx context.Context, limit int) ([]trade.Offer, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	var out []trade.Offer
	for _, offer := range r.store.offers {
		if offer.Status != trade.StatusOpen {
			continue
		}
		out = append(out, offer)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r OfferRepo) Save(ctx context.Context, offer trade.Offer) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.offers[offer.ID] = offer
	return nil
}
