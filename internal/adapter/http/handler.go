package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"gildworks/internal/app/commands"
	"gildworks/internal/app/observe"
	"gildworks/internal/app/offline"
	"gildworks/internal/app/ports"
	"gildworks/internal/app/prestige"
	"gildworks/internal/domain/tycoon"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ObserveUC  observe.UseCase
	CommandUC  commands.UseCase
	OfflineUC  offline.UseCase
	PrestigeUC prestige.UseCase
	Market     ports.WorkerMarket
	Events     ports.EventRepository
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/state", h.state)
	api.GET("/events", h.events)
	api.GET("/market", h.market)
	api.POST("/market/refresh", h.marketRefresh)
	api.POST("/offline/claim", h.offlineClaim)
	api.GET("/prestige", h.prestigePreview)
	api.POST("/prestige", h.prestigePerform)

	cmd := api.Group("/command")
	cmd.POST("/hire", h.hire)
	cmd.POST("/fire", h.fire)
	cmd.POST("/rest", h.rest)
	cmd.POST("/train", h.train)
	cmd.POST("/transfer", h.transfer)
	cmd.POST("/upgrade", h.upgrade)
	cmd.POST("/research", h.research)
	cmd.POST("/shop", h.shop)
	cmd.POST("/build", h.build)
	cmd.POST("/boost", h.boost)
	cmd.POST("/order", h.order)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ObserveUC.Execute())
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	events, err := h.Events.List(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": events})
}

func (h Handler) market(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"candidates": h.Market.AvailableWorkers()})
}

func (h Handler) marketRefresh(_ context.Context, ctx *app.RequestContext) {
	h.CommandUC.RefreshMarket()
	ctx.JSON(consts.StatusOK, map[string]any{"candidates": h.Market.AvailableWorkers()})
}

func (h Handler) offlineClaim(_ context.Context, ctx *app.RequestContext) {
	resp, err := h.OfflineUC.Claim()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) prestigePreview(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.PrestigeUC.Preview())
}

func (h Handler) prestigePerform(_ context.Context, ctx *app.RequestContext) {
	resp, err := h.PrestigeUC.Perform()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hire(_ context.Context, ctx *app.RequestContext) {
	var body commands.HireRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Hire(body))
}

func (h Handler) fire(_ context.Context, ctx *app.RequestContext) {
	var body struct {
		WorkerID string `json:"worker_id"`
	}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Fire(body.WorkerID))
}

func (h Handler) rest(_ context.Context, ctx *app.RequestContext) {
	var body commands.RestRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Rest(body))
}

func (h Handler) train(_ context.Context, ctx *app.RequestContext) {
	var body commands.TrainRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Train(body))
}

func (h Handler) transfer(_ context.Context, ctx *app.RequestContext) {
	var body commands.TransferRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Transfer(body))
}

func (h Handler) upgrade(_ context.Context, ctx *app.RequestContext) {
	var body struct {
		WorkshopID string `json:"workshop_id"`
	}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Upgrade(body.WorkshopID))
}

func (h Handler) research(_ context.Context, ctx *app.RequestContext) {
	var body struct {
		NodeID string `json:"node_id"`
	}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Research(body.NodeID))
}

func (h Handler) shop(_ context.Context, ctx *app.RequestContext) {
	var body struct {
		ItemID string `json:"item_id"`
	}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.BuyShopItem(body.ItemID))
}

func (h Handler) build(_ context.Context, ctx *app.RequestContext) {
	var body struct {
		StructureID string `json:"structure_id"`
	}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Build(body.StructureID))
}

func (h Handler) boost(_ context.Context, ctx *app.RequestContext) {
	var body commands.BoostRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.Boost(body))
}

func (h Handler) order(_ context.Context, ctx *app.RequestContext) {
	var body struct {
		OrderID string `json:"order_id"`
	}
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runCommand(ctx, h.CommandUC.CompleteOrder(body.OrderID))
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

func (h Handler) runCommand(ctx *app.RequestContext, err error) {
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"ok": true})
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
	case errors.Is(err, commands.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, tycoon.ErrInsufficientGold):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_gold", err.Error())
	case errors.Is(err, tycoon.ErrInsufficientCrystals):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_crystals", err.Error())
	case errors.Is(err, tycoon.ErrRosterFull):
		writeErrorBody(ctx, consts.StatusConflict, "roster_full", err.Error())
	case errors.Is(err, tycoon.ErrInvalidTransition):
		writeErrorBody(ctx, consts.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, tycoon.ErrMaxLevel), errors.Is(err, tycoon.ErrMaxTier):
		writeErrorBody(ctx, consts.StatusConflict, "max_level", err.Error())
	case errors.Is(err, tycoon.ErrResearchBusy), errors.Is(err, tycoon.ErrResearchDone),
		errors.Is(err, tycoon.ErrAlreadyOwned):
		writeErrorBody(ctx, consts.StatusConflict, "unavailable", err.Error())
	case errors.Is(err, tycoon.ErrNotEligible):
		writeErrorBody(ctx, consts.StatusConflict, "not_eligible", err.Error())
	case errors.Is(err, tycoon.ErrUnknownWorker), errors.Is(err, tycoon.ErrUnknownWorkshop),
		errors.Is(err, tycoon.ErrUnknownResearch), errors.Is(err, tycoon.ErrUnknownShopItem),
		errors.Is(err, tycoon.ErrUnknownStructure), errors.Is(err, tycoon.ErrUnknownOrder):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
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
