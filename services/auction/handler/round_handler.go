package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/brandonecarr/bidwars/internal/models"
	"github.com/brandonecarr/bidwars/services/auction/helpers"
	"github.com/brandonecarr/bidwars/utils"
)

type RoundServiceInterface interface {
	StartRound(code, adminToken string) (model.Round, error)
	ResolveSold(code, adminToken, roundID string) (model.Round, error)
	ResolveSkip(code, adminToken, roundID string) (model.Round, error)
	AssignItem(code, adminToken, roundID, itemID string) (model.Item, error)
	EndSession(code, adminToken string) error
}

type RoundHandler struct {
	service RoundServiceInterface
}

func NewRoundHandler(service RoundServiceInterface) *RoundHandler {
	return &RoundHandler{service: service}
}

// StartRoundHandler handles POST /sessions/:code/rounds
func (h *RoundHandler) StartRoundHandler(c *gin.Context) {
	code := c.Param("code")
	round, err := h.service.StartRound(code, helpers.BearerToken(c))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StartRoundHandler: failed to start round", map[string]any{"code": code, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, round, "round started successfully")
	helpers.LogSuccess("StartRoundHandler", "round started successfully", map[string]any{
		"code":     code,
		"round_id": round.RoundID,
		"number":   round.Number,
	})
}

// ResolveSoldHandler handles POST /sessions/:code/rounds/:round_id/sold
func (h *RoundHandler) ResolveSoldHandler(c *gin.Context) {
	code := c.Param("code")
	roundID := c.Param("round_id")
	round, err := h.service.ResolveSold(code, helpers.BearerToken(c), roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResolveSoldHandler: failed to resolve round", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, round, "round resolved successfully")
	helpers.LogSuccess("ResolveSoldHandler", "round resolved successfully", map[string]any{
		"round_id": round.RoundID,
		"status":   string(round.Status),
	})
}

// ResolveSkipHandler handles POST /sessions/:code/rounds/:round_id/skip
func (h *RoundHandler) ResolveSkipHandler(c *gin.Context) {
	code := c.Param("code")
	roundID := c.Param("round_id")
	round, err := h.service.ResolveSkip(code, helpers.BearerToken(c), roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResolveSkipHandler: failed to skip round", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, round, "round skipped successfully")
	helpers.LogSuccess("ResolveSkipHandler", "round skipped successfully", map[string]any{
		"round_id": round.RoundID,
	})
}

// AssignItemHandler handles POST /sessions/:code/rounds/:round_id/item
func (h *RoundHandler) AssignItemHandler(c *gin.Context) {
	var req helpers.AssignItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AssignItemHandler", err)
		return
	}

	code := c.Param("code")
	roundID := c.Param("round_id")
	item, err := h.service.AssignItem(code, helpers.BearerToken(c), roundID, req.ItemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AssignItemHandler: failed to assign item", map[string]any{
			"round_id": roundID,
			"item_id":  req.ItemID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item assigned successfully")
	helpers.LogSuccess("AssignItemHandler", "item assigned successfully", map[string]any{
		"round_id": roundID,
		"item_id":  item.ItemID,
	})
}

// EndSessionHandler handles POST /sessions/:code/end
func (h *RoundHandler) EndSessionHandler(c *gin.Context) {
	code := c.Param("code")
	if err := h.service.EndSession(code, helpers.BearerToken(c)); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EndSessionHandler: failed to end session", map[string]any{"code": code, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "session ended successfully")
	helpers.LogSuccess("EndSessionHandler", "session ended successfully", map[string]any{"code": code})
}
