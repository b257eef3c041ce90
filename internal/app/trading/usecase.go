package trading

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/inventory"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/trade"
)

var (
	ErrInvalidRequest    = errors.New("invalid trade request")
	ErrInsufficientStack = errors.New("insufficient stack quantity")
)

const defaultOfferTTL = 24 * time.Hour

// UseCase mediates stack exchanges between accounts. Acceptance moves the
// offered and requested quantities between the two owners inside one
// transaction; stale stack versions abort with ErrConflict.
type UseCase struct {
	TxManager ports.TxManager
	OfferRepo ports.OfferRepository
	StackRepo ports.StackRepository
	Metrics   ports.AssemblyMetrics
	Now       func() time.Time
}

func (u UseCase) CreateOffer(ctx context.Context, req CreateOfferRequest) (CreateOfferResponse, error) {
	req.OfferedBy = strings.TrimSpace(req.OfferedBy)
	if req.OfferedBy == "" || !validLines(req.Offered) || !validLines(req.Requested) {
		return CreateOfferResponse{}, ErrInvalidRequest
	}

	now := u.now()
	ttl := defaultOfferTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	offer, err := trade.NewOffer(req.OfferedBy, req.Offered, req.Requested, ttl, now)
	if err != nil {
		u.recordOutcome(err)
		return CreateOfferResponse{}, err
	}

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, line := range offer.Offered {
			stack, err := u.StackRepo.GetByOwnerAndKind(txCtx, offer.OfferedBy, line.ItemKind)
			if err != nil {
				if errors.Is(err, ports.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrInsufficientStack, line.ItemKind)
				}
				return err
			}
			if stack.Quantity < line.Quantity {
				return fmt.Errorf("%w: %s", ErrInsufficientStack, line.ItemKind)
			}
		}
		return u.OfferRepo.Save(txCtx, offer)
	})
	if err != nil {
		u.recordOutcome(err)
		return CreateOfferResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("offer_created")
	}
	return CreateOfferResponse{Offer: offer}, nil
}

func (u UseCase) AcceptOffer(ctx context.Context, req AcceptOfferRequest) (AcceptOfferResponse, error) {
	req.OfferID = strings.TrimSpace(req.OfferID)
	req.AcceptedBy = strings.TrimSpace(req.AcceptedBy)
	if req.OfferID == "" || req.AcceptedBy == "" {
		return AcceptOfferResponse{}, ErrInvalidRequest
	}

	now := u.now()
	var out AcceptOfferResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		offer, err := u.OfferRepo.GetByID(txCtx, req.OfferID)
		if err != nil {
			return err
		}
		if err := offer.Accept(req.AcceptedBy, now); err != nil {
			if errors.Is(err, trade.ErrExpiredOffer) {
				// persist the expiry transition so later reads agree
				if saveErr := u.OfferRepo.Save(txCtx, offer); saveErr != nil {
					return saveErr
				}
			}
			return err
		}

		for _, line := range offer.Offered {
			if err := u.moveQuantity(txCtx, offer.OfferedBy, req.AcceptedBy, line, now); err != nil {
				return err
			}
		}
		for _, line := range offer.Requested {
			if err := u.moveQuantity(txCtx, req.AcceptedBy, offer.OfferedBy, line, now); err != nil {
				return err
			}
		}

		if err := u.OfferRepo.Save(txCtx, offer); err != nil {
			return err
		}
		out = AcceptOfferResponse{Offer: offer}
		return nil
	})
	if err != nil {
		u.recordOutcome(err)
		return AcceptOfferResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("offer_accepted")
	}
	return out, nil
}

func (u UseCase) CancelOffer(ctx context.Context, req CancelOfferRequest) (CancelOfferResponse, error) {
	req.OfferID = strings.TrimSpace(req.OfferID)
	req.CancelledBy = strings.TrimSpace(req.CancelledBy)
	if req.OfferID == "" || req.CancelledBy == "" {
		return CancelOfferResponse{}, ErrInvalidRequest
	}

	now := u.now()
	var out CancelOfferResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		offer, err := u.OfferRepo.GetByID(txCtx, req.OfferID)
		if err != nil {
			return err
		}
		if err := offer.Cancel(req.CancelledBy, now); err != nil {
			return err
		}
		if err := u.OfferRepo.Save(txCtx, offer); err != nil {
			return err
		}
		out = CancelOfferResponse{Offer: offer}
		return nil
	})
	if err != nil {
		u.recordOutcome(err)
		return CancelOfferResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("offer_cancelled")
	}
	return out, nil
}

func (u UseCase) ListOpen(ctx context.Context, limit int) ([]trade.Offer, error) {
	return u.OfferRepo.ListOpen(ctx, limit)
}

// moveQuantity debits one owner's stack and credits the other's, creating
// the receiving stack on first transfer of that kind.
func (u UseCase) moveQuantity(ctx context.Context, fromOwner, toOwner string, line trade.Line, now time.Time) error {
	from, err := u.StackRepo.GetByOwnerAndKind(ctx, fromOwner, line.ItemKind)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrInsufficientStack, line.ItemKind)
		}
		return err
	}
	if !from.Remove(line.Quantity) {
		return fmt.Errorf("%w: %s", ErrInsufficientStack, line.ItemKind)
	}
	fromVersion := from.Version
	from.Version++
	from.UpdatedAt = now
	if err := u.StackRepo.SaveWithVersion(ctx, from, fromVersion); err != nil {
		return err
	}

	to, err := u.StackRepo.GetByOwnerAndKind(ctx, toOwner, line.ItemKind)
	var toVersion int64
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		to = inventory.NewStack(toOwner, line.ItemKind, 0, now)
	} else {
		toVersion = to.Version
	}
	to.Add(line.Quantity)
	to.Version = toVersion + 1
	to.UpdatedAt = now
	return u.StackRepo.SaveWithVersion(ctx, to, toVersion)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) recordOutcome(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	u.Metrics.RecordFailure()
}

func validLines(lines []trade.Line) bool {
	for _, line := range lines {
		if strings.TrimSpace(line.ItemKind) == "" || line.Quantity <= 0 {
			return false
		}
	}
	return true
}
