package inventory

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDivisor = errors.New("divisor must be positive")

// Stack is one inventory line: a quantity of one item kind held by one owner.
type Stack struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	ItemKind  string    `json:"item_kind"`
	Quantity  int64     `json:"quantity"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStack(ownerID, itemKind string, quantity int64, now time.Time) Stack {
	if quantity < 0 {
		quantity = 0
	}
	return Stack{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		ItemKind:  itemKind,
		Quantity:  quantity,
		UpdatedAt: now,
	}
}

func (s *Stack) Add(amount int64) {
	if amount <= 0 {
		return
	}
	s.Quantity += amount
}

// Remove takes amount from the stack, reporting false when it is short.
func (s *Stack) Remove(amount int64) bool {
	if amount <= 0 || s.Quantity < amount {
		return false
	}
	s.Quantity -= amount
	return true
}

func (s *Stack) Multiply(factor int64) {
	if factor < 0 {
		return
	}
	s.Quantity *= factor
}

// Divide performs integer division of the quantity.
func (s *Stack) Divide(divisor int64) error {
	if divisor <= 0 {
		return ErrInvalidDivisor
	}
	s.Quantity /= divisor
	return nil
}

func (s Stack) IsEmpty() bool {
	return s.Quantity == 0
}

func (s Stack) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

func StackFromJSON(raw []byte) (Stack, error) {
	var s Stack
	if err := json.Unmarshal(raw, &s); err != nil {
		return Stack{}, err
	}
	return s, nil
}
