package account

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenRedaction replaces the session token in every serialized projection.
const TokenRedaction = "[REDACTED]"

// PlayerAccount wraps one user row. The session token never leaves the
// process unredacted.
type PlayerAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	SessionToken string    `json:"-"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
}

func New(username, email string, now time.Time) PlayerAccount {
	return PlayerAccount{
		ID:         uuid.NewString(),
		Username:   strings.TrimSpace(username),
		Email:      strings.TrimSpace(email),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

func (a *PlayerAccount) Touch(now time.Time) {
	a.LastSeenAt = now
}

// ToJSON is the plain projection with ISO-8601 dates; the token is always
// the redaction placeholder.
func (a PlayerAccount) ToJSON() map[string]any {
	return map[string]any{
		"id":            a.ID,
		"username":      a.Username,
		"email":         a.Email,
		"session_token": TokenRedaction,
		"created_at":    a.CreatedAt.UTC().Format(time.RFC3339),
		"last_seen_at":  a.LastSeenAt.UTC().Format(time.RFC3339),
	}
}

func (a PlayerAccount) Serialize() (string, error) {
	raw, err := json.Marshal(a.ToJSON())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
