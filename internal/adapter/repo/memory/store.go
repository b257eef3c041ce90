package memory

import (
	"sync"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/account"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/inventory"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/trade"
)

// Store backs the memory repos for tests and DSN-less runs. TxManager holds
// the lock for a whole transaction; repo calls outside one lock per method.
type Store struct {
	mu         sync.RWMutex
	bots       map[string]bot.Snapshot
	accounts   map[string]account.PlayerAccount
	stacks     map[string]inventory.Stack
	offers     map[string]trade.Offer
	executions map[string]ports.AssemblyExecutionRecord
	events     map[string][]bot.DomainEvent
}

func NewStore() *Store {
	return &Store{
		bots:       make(map[string]bot.Snapshot),
		accounts:   make(map[string]account.PlayerAccount),
		stacks:     make(map[string]inventory.Stack),
		offers:     make(map[string]trade.Offer),
		executions: make(map[string]ports.AssemblyExecutionRecord),
		events:     make(map[string][]bot.DomainEvent),
	}
}

func execKey(botID, key string) string {
	return botID + "::" + key
}

func stackKey(ownerID, itemKind string) string {
	return ownerID + "::" + itemKind
}

func (s *Store) SeedBot(snap bot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bots[snap.ID] = snap
}

func (s *Store) SeedAccount(acct account.PlayerAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[acct.ID] = acct
}

func (s *Store) SeedStack(stack inventory.Stack) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stacks[stackKey(stack.OwnerID, stack.ItemKind)] = stack
}
