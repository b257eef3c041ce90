package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm/model"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/trade"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfferRepo struct {
	db *gorm.DB
}

func NewOfferRepo(db *gorm.DB) OfferRepo {
	return OfferRepo{db: db}
}

func (r OfferRepo) GetByID(ctx context.Context, offerID string) (trade.Offer, error) {
	var m model.TradeOffer
	if err := getDBFromCtx(ctx, r.db).Where("offer_id = ?", offerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trade.Offer{}, ports.ErrNotFound
		}
		return trade.Offer{}, err
	}
	return decodeOffer(m)
}

func (r OfferRepo) ListOpen(ctx context.Context, limit int) ([]trade.Offer, error) {
	rows := []model.TradeOffer{}
	query := getDBFromCtx(ctx, r.db).
		Where("status = ?", string(trade.StatusOpen)).
		Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]trade.Offer, 0, len(rows))
	for _, row := range rows {
		offer, err := decodeOffer(row)
		if err != nil {
			return nil, err
		}
		out = append(out, offer)
	}
	return out, nil
}

func (r OfferRepo) Save(ctx context.Context, offer trade.Offer) error {
	offered, err := json.Marshal(offer.Offered)
	if err != nil {
		return err
	}
	requested, err := json.Marshal(offer.Requested)
	if err != nil {
		return err
	}
	m := model.TradeOffer{
		OfferID:    offer.ID,
		OfferedBy:  offer.OfferedBy,
		AcceptedBy: offer.AcceptedBy,
		Offered:    offered,
		Requested:  requested,
		Status:     string(offer.Status),
		CreatedAt:  offer.CreatedAt,
		ExpiresAt:  offer.ExpiresAt,
		ResolvedAt: offer.ResolvedAt,
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "offer_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func decodeOffer(m model.TradeOffer) (trade.Offer, error) {
	var offered, requested []trade.Line
	if len(m.Offered) > 0 {
		if err := json.Unmarshal(m.Offered, &offered); err != nil {
			return trade.Offer{}, err
		}
	}
	if len(m.Requested) > 0 {
		if err := json.Unmarshal(m.Requested, &requested); err != nil {
			return trade.Offer{}, err
		}
	}
	return trade.Offer{
		ID:         m.OfferID,
		OfferedBy:  m.OfferedBy,
		AcceptedBy: m.AcceptedBy,
		Offered:    offered,
		Requested:  requested,
		Status:     trade.Status(m.Status),
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
		ResolvedAt: m.ResolvedAt,
	}, nil
}
