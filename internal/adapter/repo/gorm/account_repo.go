package gormrepo

import (
	"context"
	"errors"

	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm/model"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return AccountRepo{db: db}
}

func (r AccountRepo) GetByID(ctx context.Context, accountID string) (account.PlayerAccount, error) {
	var m model.PlayerAccount
	if err := getDBFromCtx(ctx, r.db).Where("account_id = ?", accountID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.PlayerAccount{}, ports.ErrNotFound
		}
		return account.PlayerAccount{}, err
	}
	return account.PlayerAccount{
		ID:           m.AccountID,
		Username:     m.Username,
		Email:        m.Email,
		SessionToken: m.SessionToken,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		LastSeenAt:   m.LastSeenAt,
	}, nil
}

func (r AccountRepo) SaveWithVersion(ctx context.Context, acct account.PlayerAccount, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.PlayerAccount{
			AccountID:    acct.ID,
			Username:     acct.Username,
			Email:        acct.Email,
			SessionToken: acct.SessionToken,
			Version:      acct.Version,
			CreatedAt:    acct.CreatedAt,
			LastSeenAt:   acct.LastSeenAt,
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"username":      acct.Username,
		"email":         acct.Email,
		"session_token": acct.SessionToken,
		"version":       acct.Version,
		"last_seen_at":  acct.LastSeenAt,
	}
	res := db.Model(&model.PlayerAccount{}).
		Where("account_id = ? AND version = ?", acct.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
