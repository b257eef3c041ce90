package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/pablohpsilva/Botking-sub000/internal/app/accounts"
	"github.com/pablohpsilva/Botking-sub000/internal/app/assembly"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/app/roster"
	"github.com/pablohpsilva/Botking-sub000/internal/app/trading"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/trade"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	CreateUC   assembly.CreateUseCase
	LoadoutUC  assembly.LoadoutUseCase
	RosterUC   roster.UseCase
	TradingUC  trading.UseCase
	AccountsUC accounts.UseCase
	KPI        kpiSnapshotProvider
	Log        *logrus.Logger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(), requestIDMiddleware(h.Log))

	botGroup := s.Group("/api/bot")
	botGroup.POST("", h.createBot)
	botGroup.POST("/status", h.botStatus)
	botGroup.POST("/loadout", h.loadout)
	botGroup.GET("/roster", h.listRoster)

	tradeGroup := s.Group("/api/trade")
	tradeGroup.POST("/offer", h.createOffer)
	tradeGroup.POST("/accept", h.acceptOffer)
	tradeGroup.POST("/cancel", h.cancelOffer)
	tradeGroup.GET("/open", h.listOpenOffers)

	accountGroup := s.Group("/api/account")
	accountGroup.POST("", h.registerAccount)
	accountGroup.POST("/status", h.accountStatus)

	s.GET("/ops/kpi", h.kpi)
}

type statusRequest struct {
	BotID string `json:"bot_id"`
}

func (h Handler) createBot(c context.Context, ctx *app.RequestContext) {
	var body assembly.CreateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CreateUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) botStatus(c context.Context, ctx *app.RequestContext) {
	var body statusRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.RosterUC.Status(c, roster.StatusRequest{BotID: body.BotID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) loadout(c context.Context, ctx *app.RequestContext) {
	var body assembly.LoadoutRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LoadoutUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listRoster(c context.Context, ctx *app.RequestContext) {
	ownerID := string(ctx.Query("owner_id"))
	resp, err := h.RosterUC.List(c, roster.ListRequest{OwnerID: ownerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) createOffer(c context.Context, ctx *app.RequestContext) {
	var body trading.CreateOfferRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.TradingUC.CreateOffer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) acceptOffer(c context.Context, ctx *app.RequestContext) {
	var body trading.AcceptOfferRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.TradingUC.AcceptOffer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cancelOffer(c context.Context, ctx *app.RequestContext) {
	var body trading.CancelOfferRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.TradingUC.CancelOffer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listOpenOffers(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	offers, err := h.TradingUC.ListOpen(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"offers": offers})
}

func (h Handler) registerAccount(c context.Context, ctx *app.RequestContext) {
	var body accounts.RegisterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.AccountsUC.Register(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) accountStatus(c context.Context, ctx *app.RequestContext) {
	var body accounts.GetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.AccountsUC.Get(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"account": resp.Account.ToJSON()})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, bot.ErrWorkerSoulChip):
		writeErrorBody(ctx, consts.StatusBadRequest, "worker_soul_chip", err.Error())
	case errors.Is(err, bot.ErrPlayerRequired):
		writeErrorBody(ctx, consts.StatusBadRequest, "player_required", err.Error())
	case errors.Is(err, trading.ErrInsufficientStack):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_stack", err.Error())
	case errors.Is(err, trade.ErrNotOpen):
		writeErrorBody(ctx, consts.StatusConflict, "offer_not_open", err.Error())
	case errors.Is(err, trade.ErrExpiredOffer):
		writeErrorBody(ctx, consts.StatusConflict, "offer_expired", err.Error())
	case errors.Is(err, trade.ErrOwnOffer):
		writeErrorBody(ctx, consts.StatusConflict, "own_offer", err.Error())
	case errors.Is(err, trade.ErrNotOfferer):
		writeErrorBody(ctx, consts.StatusForbidden, "not_offerer", err.Error())
	case errors.Is(err, assembly.ErrInvalidRequest),
		errors.Is(err, assembly.ErrInvalidCommandParams),
		errors.Is(err, roster.ErrInvalidRequest),
		errors.Is(err, accounts.ErrInvalidRequest),
		errors.Is(err, trading.ErrInvalidRequest),
		errors.Is(err, trade.ErrEmptyOffer),
		errors.Is(err, ports.ErrValidation):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
