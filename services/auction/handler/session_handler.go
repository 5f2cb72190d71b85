package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/brandonecarr/bidwars/internal/models"
	session "github.com/brandonecarr/bidwars/internal/sessionService"
	"github.com/brandonecarr/bidwars/services/auction/helpers"
	"github.com/brandonecarr/bidwars/utils"
)

type SessionServiceInterface interface {
	Create(in session.CreateSessionInput) (model.Session, model.Participant, error)
	Join(code, name string) (model.Participant, error)
	Me(token string) (model.Participant, error)
	State(code string) (session.State, error)
	AddItem(code, adminToken string, in session.AddItemInput) (model.Item, error)
	ListItems(code string) ([]model.Item, error)
}

type SessionHandler struct {
	service SessionServiceInterface
}

func NewSessionHandler(service SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// CreateSessionHandler handles POST /sessions
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	var req helpers.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSessionHandler", err)
		return
	}

	sess, admin, err := h.service.Create(session.CreateSessionInput{
		AdminName:       req.AdminName,
		StartingBalance: req.StartingBalance,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateSessionHandler: failed to create session", map[string]any{
			"admin_name": req.AdminName,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.CreateSessionResponse{
		SessionID:        sess.SessionID,
		Code:             sess.Code,
		AdminToken:       sess.AdminToken,
		ParticipantToken: admin.Token,
		StartingBalance:  sess.StartingBalance,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "session created successfully")
	helpers.LogSuccess("CreateSessionHandler", "session created successfully", map[string]any{
		"session_id": sess.SessionID,
		"code":       sess.Code,
	})
}

// JoinSessionHandler handles POST /sessions/:code/join
func (h *SessionHandler) JoinSessionHandler(c *gin.Context) {
	var req helpers.JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinSessionHandler", err)
		return
	}

	code := c.Param("code")
	participant, err := h.service.Join(code, req.Name)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinSessionHandler: failed to join", map[string]any{
			"code":  code,
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.JoinSessionResponse{
		ParticipantID: participant.ParticipantID,
		Name:          participant.Name,
		Balance:       participant.Balance,
		Token:         participant.Token,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "joined game successfully")
	helpers.LogSuccess("JoinSessionHandler", "joined game successfully", map[string]any{
		"code":           code,
		"participant_id": participant.ParticipantID,
	})
}

// MeHandler handles GET /sessions/:code/me
func (h *SessionHandler) MeHandler(c *gin.Context) {
	participant, err := h.service.Me(helpers.BearerToken(c))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, participant, "participant retrieved successfully")
}

// StateHandler handles GET /sessions/:code/state
func (h *SessionHandler) StateHandler(c *gin.Context) {
	code := c.Param("code")
	state, err := h.service.State(code)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StateHandler: failed to load state", map[string]any{"code": code, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, state, "state retrieved successfully")
}

// AddItemHandler handles POST /sessions/:code/items
func (h *SessionHandler) AddItemHandler(c *gin.Context) {
	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	code := c.Param("code")
	item, err := h.service.AddItem(code, helpers.BearerToken(c), session.AddItemInput{
		Name:        req.Name,
		Description: req.Description,
		StartingBid: req.StartingBid,
		AnonMode:    model.AnonMode(req.AnonMode),
		AnonHint:    req.AnonHint,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddItemHandler: failed to add item", map[string]any{"code": code, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item added successfully")
	helpers.LogSuccess("AddItemHandler", "item added successfully", map[string]any{
		"code":    code,
		"item_id": item.ItemID,
	})
}

// ListItemsHandler handles GET /sessions/:code/items
func (h *SessionHandler) ListItemsHandler(c *gin.Context) {
	code := c.Param("code")
	items, err := h.service.ListItems(code)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}
