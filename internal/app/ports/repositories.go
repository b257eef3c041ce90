package ports

import (
	"context"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/account"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/inventory"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/trade"
)

// BotRepository stores bot snapshots under optimistic versioning: expected
// version 0 creates, anything else updates only when the stored version
// matches, returning ErrConflict otherwise.
type BotRepository interface {
	GetByID(ctx context.Context, botID string) (bot.Snapshot, error)
	ListByOwner(ctx context.Context, ownerID string) ([]bot.Snapshot, error)
	SaveWithVersion(ctx context.Context, snap bot.Snapshot, expectedVersion int64) error
	Delete(ctx context.Context, botID string) error
}

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (account.PlayerAccount, error)
	SaveWithVersion(ctx context.Context, acct account.PlayerAccount, expectedVersion int64) error
}

type StackRepository interface {
	GetByOwnerAndKind(ctx context.Context, ownerID, itemKind string) (inventory.Stack, error)
	SaveWithVersion(ctx context.Context, stack inventory.Stack, expectedVersion int64) error
}

type OfferRepository interface {
	GetByID(ctx context.Context, offerID string) (trade.Offer, error)
	ListOpen(ctx context.Context, limit int) ([]trade.Offer, error)
	Save(ctx context.Context, offer trade.Offer) error
}

type EventRepository interface {
	Append(ctx context.Context, botID string, events []bot.DomainEvent) error
	ListByBotID(ctx context.Context, botID string, limit int) ([]bot.DomainEvent, error)
}

// AssemblyExecutionRecord makes loadout commands idempotent: a repeated
// idempotency key replays the recorded outcome instead of reapplying it.
type AssemblyExecutionRecord struct {
	BotID          string
	IdempotencyKey string
	Command        string
	ResultJSON     []byte
	AppliedAt      time.Time
}

type AssemblyExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, botID, key string) (*AssemblyExecutionRecord, error)
	SaveExecution(ctx context.Context, record AssemblyExecutionRecord) error
}
