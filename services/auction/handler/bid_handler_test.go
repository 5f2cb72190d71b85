package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	model "github.com/brandonecarr/bidwars/internal/models"
	"github.com/brandonecarr/bidwars/services/auction/helpers"
)

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sessions/:code/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		token          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{RoundID: "round1", Amount: 100},
			token:       "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("token-p1", "round1", 100).
					Return(model.Bid{
						BidID:         "bid1",
						RoundID:       "round1",
						ParticipantID: "p1",
						Amount:        100,
						CreatedAt:     now,
					}, 900, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "round1", data["round_id"])
				require.Equal(t, "p1", data["participant_id"])
				require.Equal(t, 100.0, data["amount"])
				require.Equal(t, 900.0, data["new_balance"])
				require.Equal(t, now.Format(time.RFC3339), data["created_at"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			token:          "token-p1",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_round_id",
			requestBody:    helpers.PlaceBidRequest{RoundID: "", Amount: 50},
			token:          "token-p1",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "zero_amount",
			requestBody:    helpers.PlaceBidRequest{RoundID: "round1", Amount: 0},
			token:          "token-p1",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "missing_token",
			requestBody: helpers.PlaceBidRequest{RoundID: "round1", Amount: 10},
			token:       "",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("", "round1", 10).
					Return(model.Bid{}, 0, auctionerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "unauthorized",
		},
		{
			name:        "service_bid_too_low",
			requestBody: helpers.PlaceBidRequest{RoundID: "round1", Amount: 50},
			token:       "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("token-p1", "round1", 50).
					Return(model.Bid{}, 1000, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "service_already_highest",
			requestBody: helpers.PlaceBidRequest{RoundID: "round1", Amount: 60},
			token:       "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("token-p1", "round1", 60).
					Return(model.Bid{}, 950, auctionerrors.ErrAlreadyHighestBidder)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "you already have the highest bid",
		},
		{
			name:        "service_insufficient_funds",
			requestBody: helpers.PlaceBidRequest{RoundID: "round1", Amount: 5000},
			token:       "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("token-p1", "round1", 5000).
					Return(model.Bid{}, 1000, auctionerrors.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "insufficient funds",
		},
		{
			name:        "service_round_not_active",
			requestBody: helpers.PlaceBidRequest{RoundID: "round9", Amount: 10},
			token:       "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("token-p1", "round9", 10).
					Return(model.Bid{}, 1000, auctionerrors.ErrRoundNotActive)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "round is not active",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.PlaceBidRequest{RoundID: "round1", Amount: 100},
			token:       "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("token-p1", "round1", 100).
					Return(model.Bid{}, 0, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/sessions/ABCDE/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test ListBidsHandler
func TestListBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/sessions/:code/rounds/:round_id/bids", handler.ListBidsHandler)

	tests := []struct {
		name           string
		roundID        string
		token          string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:    "success_with_bids",
			roundID: "round1",
			token:   "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids("token-p1", "round1").
					Return([]model.Bid{
						{BidID: "b1", RoundID: "round1", ParticipantID: "p1", Amount: 10},
						{BidID: "b2", RoundID: "round1", ParticipantID: "p2", Amount: 20},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:    "success_empty",
			roundID: "round2",
			token:   "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids("token-p1", "round2").
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:    "unknown_round",
			roundID: "ghost",
			token:   "token-p1",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids("token-p1", "ghost").
					Return(nil, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "unauthorized",
			roundID: "round1",
			token:   "",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids("", "round1").
					Return(nil, auctionerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/sessions/ABCDE/rounds/"+tc.roundID+"/bids", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].([]any)
				require.Len(t, data, tc.expectedCount)
			}
		})
	}
}
