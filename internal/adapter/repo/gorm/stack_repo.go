package gormrepo

import (
	"context"
	"errors"

	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm/model"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/inventory"

	"gorm.io/gorm"
)

type StackRepo struct {
	db *gorm.DB
}

func NewStackRepo(db *gorm.DB) StackRepo {
	return StackRepo{db: db}
}

func (r StackRepo) GetByOwnerAndKind(ctx context.Context, ownerID, itemKind string) (inventory.Stack, error) {
	var m model.ItemStack
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND item_kind = ?", ownerID, itemKind).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inventory.Stack{}, ports.ErrNotFound
		}
		return inventory.Stack{}, err
	}
	return inventory.Stack{
		ID:        m.StackID,
		OwnerID:   m.OwnerID,
		ItemKind:  m.ItemKind,
		Quantity:  m.Quantity,
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r StackRepo) SaveWithVersion(ctx context.Context, stack inventory.Stack, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.ItemStack{
			StackID:   stack.ID,
			OwnerID:   stack.OwnerID,
			ItemKind:  stack.ItemKind,
			Quantity:  stack.Quantity,
			Version:   stack.Version,
			UpdatedAt: stack.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"quantity":   stack.Quantity,
		"version":    stack.Version,
		"updated_at": stack.UpdatedAt,
	}
	res := db.Model(&model.ItemStack{}).
		Where("owner_id = ? AND item_kind = ? AND version = ?", stack.OwnerID, stack.ItemKind, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
