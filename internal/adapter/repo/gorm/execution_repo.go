package gormrepo

import (
	"context"
	"errors"

	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm/model"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"

	"gorm.io/gorm"
)

type AssemblyExecutionRepo struct {
	db *gorm.DB
}

func NewAssemblyExecutionRepo(db *gorm.DB) AssemblyExecutionRepo {
	return AssemblyExecutionRepo{db: db}
}

func (r AssemblyExecutionRepo) GetByIdempotencyKey(ctx context.Context, botID, key string) (*ports.AssemblyExecutionRecord, error) {
	var m model.AssemblyExecution
	err := getDBFromCtx(ctx, r.db).
		Where("bot_id = ? AND idempotency_key = ?", botID, key).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.AssemblyExecutionRecord{
		BotID:          m.BotID,
		IdempotencyKey: m.IdempotencyKey,
		Command:        m.Command,
		ResultJSON:     m.Result,
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r AssemblyExecutionRepo) SaveExecution(ctx context.Context, record ports.AssemblyExecutionRecord) error {
	m := model.AssemblyExecution{
		BotID:          record.BotID,
		IdempotencyKey: record.IdempotencyKey,
		Command:        record.Command,
		Result:         record.ResultJSON,
		AppliedAt:      record.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}
