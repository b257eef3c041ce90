package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/account"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid account request")

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse carries the session token exactly once; later reads only
// see the redacted account.
type RegisterResponse struct {
	Account      account.PlayerAccount `json:"account"`
	SessionToken string                `json:"session_token"`
}

type GetRequest struct {
	AccountID string `json:"account_id"`
}

type GetResponse struct {
	Account account.PlayerAccount `json:"account"`
}

type UseCase struct {
	AccountRepo ports.AccountRepository
	Now         func() time.Time
}

func (u UseCase) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return RegisterResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	acct := account.New(req.Username, req.Email, nowFn())
	acct.SessionToken = uuid.NewString()
	acct.Version = 1

	if err := u.AccountRepo.SaveWithVersion(ctx, acct, 0); err != nil {
		return RegisterResponse{}, err
	}
	return RegisterResponse{Account: acct, SessionToken: acct.SessionToken}, nil
}

// Get bumps LastSeenAt on every read.
func (u UseCase) Get(ctx context.Context, req GetRequest) (GetResponse, error) {
	if strings.TrimSpace(req.AccountID) == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	acct, err := u.AccountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		return GetResponse{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	prev := acct.Version
	acct.Touch(nowFn())
	acct.Version = prev + 1
	if err := u.AccountRepo.SaveWithVersion(ctx, acct, prev); err != nil {
		return GetResponse{}, err
	}
	return GetResponse{Account: acct}, nil
}
