package trade

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusAccepted  Status = "accepted"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

var (
	ErrNotOpen      = errors.New("offer is not open")
	ErrOwnOffer     = errors.New("cannot accept own offer")
	ErrNotOfferer   = errors.New("only the offerer can cancel")
	ErrEmptyOffer   = errors.New("offer needs at least one offered line")
	ErrExpiredOffer = errors.New("offer has expired")
)

// Line is one side's item quantity in an exchange.
type Line struct {
	ItemKind string `json:"item_kind"`
	Quantity int64  `json:"quantity"`
}

// Offer is a standing exchange proposal between accounts.
type Offer struct {
	ID         string     `json:"id"`
	OfferedBy  string     `json:"offered_by"`
	AcceptedBy string     `json:"accepted_by,omitempty"`
	Offered    []Line     `json:"offered"`
	Requested  []Line     `json:"requested"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func NewOffer(offeredBy string, offered, requested []Line, ttl time.Duration, now time.Time) (Offer, error) {
	if len(offered) == 0 {
		return Offer{}, ErrEmptyOffer
	}
	return Offer{
		ID:        uuid.NewString(),
		OfferedBy: offeredBy,
		Offered:   append([]Line{}, offered...),
		Requested: append([]Line{}, requested...),
		Status:    StatusOpen,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (o Offer) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// Accept transitions the offer to accepted; the exchange of stacks is the
// caller's transactional concern.
func (o *Offer) Accept(by string, now time.Time) error {
	if o.Status != StatusOpen {
		return ErrNotOpen
	}
	if o.IsExpired(now) {
		o.Status = StatusExpired
		return ErrExpiredOffer
	}
	if by == o.OfferedBy {
		return ErrOwnOffer
	}
	o.Status = StatusAccepted
	o.AcceptedBy = by
	o.ResolvedAt = &now
	return nil
}

func (o *Offer) Cancel(by string, now time.Time) error {
	if o.Status != StatusOpen {
		return ErrNotOpen
	}
	if by != o.OfferedBy {
		return ErrNotOfferer
	}
	o.Status = StatusCancelled
	o.ResolvedAt = &now
	return nil
}
