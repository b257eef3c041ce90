package gormrepo

import (
	"context"
	"encoding/json"

	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm/model"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, botID string, events []bot.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.DomainEvent{
			BotID:      botID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByBotID(ctx context.Context, botID string, limit int) ([]bot.DomainEvent, error) {
	rows := []model.DomainEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where("bot_id = ?", botID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]bot.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, bot.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
