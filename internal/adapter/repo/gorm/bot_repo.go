package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm/model"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"

	"gorm.io/gorm"
)

type BotRepo struct {
	db *gorm.DB
}

func NewBotRepo(db *gorm.DB) BotRepo {
	return BotRepo{db: db}
}

func (r BotRepo) GetByID(ctx context.Context, botID string) (bot.Snapshot, error) {
	var m model.Bot
	if err := getDBFromCtx(ctx, r.db).Where("bot_id = ?", botID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bot.Snapshot{}, ports.ErrNotFound
		}
		return bot.Snapshot{}, err
	}
	return decodeSnapshot(m)
}

func (r BotRepo) ListByOwner(ctx context.Context, ownerID string) ([]bot.Snapshot, error) {
	rows := []model.Bot{}
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]bot.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := decodeSnapshot(row)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

func (r BotRepo) SaveWithVersion(ctx context.Context, snap bot.Snapshot, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if expectedVersion == 0 {
		m := model.Bot{
			BotID:     snap.ID,
			OwnerID:   snap.OwnerID,
			BotType:   string(snap.Type),
			Name:      snap.Name,
			Snapshot:  body,
			Version:   snap.Version,
			CreatedAt: snap.CreatedAt,
			UpdatedAt: snap.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"owner_id":   snap.OwnerID,
		"bot_type":   string(snap.Type),
		"name":       snap.Name,
		"snapshot":   body,
		"version":    snap.Version,
		"updated_at": snap.UpdatedAt,
	}
	res := db.Model(&model.Bot{}).
		Where("bot_id = ? AND version = ?", snap.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r BotRepo) Delete(ctx context.Context, botID string) error {
	res := getDBFromCtx(ctx, r.db).Where("bot_id = ?", botID).Delete(&model.Bot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func decodeSnapshot(m model.Bot) (bot.Snapshot, error) {
	var snap bot.Snapshot
	if err := json.Unmarshal(m.Snapshot, &snap); err != nil {
		return bot.Snapshot{}, err
	}
	snap.Version = m.Version
	return snap, nil
}
