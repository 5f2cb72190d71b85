package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "github.com/brandonecarr/bidwars/internal/models"
	"github.com/brandonecarr/bidwars/services/auction/helpers"
	"github.com/brandonecarr/bidwars/utils"
)

type BidServiceInterface interface {
	PlaceBid(token, roundID string, amount int) (model.Bid, int, error)
	ListBids(token, roundID string) ([]model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /sessions/:code/bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, newBalance, err := h.service.PlaceBid(helpers.BearerToken(c), req.RoundID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"round_id": req.RoundID,
			"amount":   req.Amount,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:         bid.BidID,
		RoundID:       bid.RoundID,
		ParticipantID: bid.ParticipantID,
		Amount:        bid.Amount,
		NewBalance:    newBalance,
		CreatedAt:     bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":         bid.BidID,
		"round_id":       bid.RoundID,
		"participant_id": bid.ParticipantID,
		"amount":         bid.Amount,
	})
}

// ListBidsHandler handles GET /sessions/:code/rounds/:round_id/bids
func (h *BidHandler) ListBidsHandler(c *gin.Context) {
	roundID := c.Param("round_id")
	bids, err := h.service.ListBids(helpers.BearerToken(c), roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsHandler: error retrieving bids", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}
