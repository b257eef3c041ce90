package trading

import "github.com/pablohpsilva/Botking-sub000/internal/domain/trade"

type CreateOfferRequest struct {
	OfferedBy  string       `json:"offered_by"`
	Offered    []trade.Line `json:"offered"`
	Requested  []trade.Line `json:"requested"`
	TTLSeconds int64        `json:"ttl_seconds,omitempty"`
}

type CreateOfferResponse struct {
	Offer trade.Offer `json:"offer"`
}

type AcceptOfferRequest struct {
	OfferID    string `json:"offer_id"`
	AcceptedBy string `json:"accepted_by"`
}

type AcceptOfferResponse struct {
	Offer trade.Offer `json:"offer"`
}

type CancelOfferRequest struct {
	OfferID     string `json:"offer_id"`
	CancelledBy string `json:"cancelled_by"`
}

type CancelOfferResponse struct {
	Offer trade.Offer `json:"offer"`
}
