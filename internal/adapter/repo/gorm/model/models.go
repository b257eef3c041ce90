// Package model holds the hand-written row types backing the Postgres
// repos. Aggregates are stored as JSONB snapshots next to the columns the
// queries filter on.
package model

import "time"

type Bot struct {
	BotID     string    `gorm:"column:bot_id;primaryKey"`
	OwnerID   string    `gorm:"column:owner_id;index"`
	BotType   string    `gorm:"column:bot_type"`
	Name      string    `gorm:"column:name"`
	Snapshot  []byte    `gorm:"column:snapshot;type:jsonb"`
	Version   int64     `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Bot) TableName() string { return "bots" }

type PlayerAccount struct {
	AccountID    string    `gorm:"column:account_id;primaryKey"`
	Username     string    `gorm:"column:username"`
	Email        string    `gorm:"column:email"`
	SessionToken string    `gorm:"column:session_token"`
	Version      int64     `gorm:"column:version"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	LastSeenAt   time.Time `gorm:"column:last_seen_at"`
}

func (PlayerAccount) TableName() string { return "player_accounts" }

type ItemStack struct {
	StackID   string    `gorm:"column:stack_id;primaryKey"`
	OwnerID   string    `gorm:"column:owner_id;index:idx_item_stacks_owner_kind,unique"`
	ItemKind  string    `gorm:"column:item_kind;index:idx_item_stacks_owner_kind,unique"`
	Quantity  int64     `gorm:"column:quantity"`
	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ItemStack) TableName() string { return "item_stacks" }

type TradeOffer struct {
	OfferID    string     `gorm:"column:offer_id;primaryKey"`
	OfferedBy  string     `gorm:"column:offered_by;index"`
	AcceptedBy string     `gorm:"column:accepted_by"`
	Offered    []byte     `gorm:"column:offered;type:jsonb"`
	Requested  []byte     `gorm:"column:requested;type:jsonb"`
	Status     string     `gorm:"column:status;index"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	ExpiresAt  time.Time  `gorm:"column:expires_at"`
	ResolvedAt *time.Time `gorm:"column:resolved_at"`
}

func (TradeOffer) TableName() string { return "trade_offers" }

type AssemblyExecution struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	BotID          string    `gorm:"column:bot_id;index:idx_assembly_exec_key,unique"`
	IdempotencyKey string    `gorm:"column:idempotency_key;index:idx_assembly_exec_key,unique"`
	Command        string    `gorm:"column:command"`
	Result         []byte    `gorm:"column:result;type:jsonb"`
	AppliedAt      time.Time `gorm:"column:applied_at"`
}

func (AssemblyExecution) TableName() string { return "assembly_executions" }

type DomainEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	BotID      string    `gorm:"column:bot_id;index"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
