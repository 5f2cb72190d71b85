package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	model "github.com/brandonecarr/bidwars/internal/models"
	session "github.com/brandonecarr/bidwars/internal/sessionService"
	"github.com/brandonecarr/bidwars/services/auction/helpers"
)

// Test CreateSessionHandler
func TestCreateSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSessionServiceInterface(ctrl)
	handler := NewSessionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sessions", handler.CreateSessionHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success",
			requestBody: helpers.CreateSessionRequest{AdminName: "alice", StartingBalance: 500},
			mockSetup: func() {
				mockService.EXPECT().
					Create(session.CreateSessionInput{AdminName: "alice", StartingBalance: 500}).
					Return(
						model.Session{SessionID: "sess1", Code: "ABCDE", AdminToken: "admin-tok", StartingBalance: 500},
						model.Participant{ParticipantID: "p1", Token: "player-tok"},
						nil,
					)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "session created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "ABCDE", data["code"])
				require.Equal(t, "admin-tok", data["admin_token"])
				require.Equal(t, "player-tok", data["participant_token"])
				require.Equal(t, 500.0, data["starting_balance"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_admin_name",
			requestBody:    helpers.CreateSessionRequest{AdminName: ""},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "balance_below_minimum",
			requestBody:    helpers.CreateSessionRequest{AdminName: "alice", StartingBalance: 50},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_error",
			requestBody: helpers.CreateSessionRequest{AdminName: "bob"},
			mockSetup: func() {
				mockService.EXPECT().
					Create(session.CreateSessionInput{AdminName: "bob"}).
					Return(model.Session{}, model.Participant{}, auctionerrors.ErrPersistenceFailure)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to save change",
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

			req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test JoinSessionHandler
func TestJoinSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSessionServiceInterface(ctrl)
	handler := NewSessionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sessions/:code/join", handler.JoinSessionHandler)

	tests := []struct {
		name           string
		code           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			code:        "ABCDE",
			requestBody: helpers.JoinSessionRequest{Name: "bob"},
			mockSetup: func() {
				mockService.EXPECT().
					Join("ABCDE", "bob").
					Return(model.Participant{ParticipantID: "p2", Name: "bob", Balance: 1000, Token: "tok-bob"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "joined game successfully",
		},
		{
			name:        "name_taken",
			code:        "ABCDE",
			requestBody: helpers.JoinSessionRequest{Name: "bob"},
			mockSetup: func() {
				mockService.EXPECT().
					Join("ABCDE", "bob").
					Return(model.Participant{}, auctionerrors.ErrNameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "that name is already taken in this game",
		},
		{
			name:        "unknown_code",
			code:        "ZZZZZ",
			requestBody: helpers.JoinSessionRequest{Name: "bob"},
			mockSetup: func() {
				mockService.EXPECT().
					Join("ZZZZZ", "bob").
					Return(model.Participant{}, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "not found",
		},
		{
			name:        "game_over",
			code:        "ABCDE",
			requestBody: helpers.JoinSessionRequest{Name: "late"},
			mockSetup: func() {
				mockService.EXPECT().
					Join("ABCDE", "late").
					Return(model.Participant{}, auctionerrors.ErrSessionCompleted)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "this game has already ended",
		},
		{
			name:           "missing_name",
			code:           "ABCDE",
			requestBody:    helpers.JoinSessionRequest{Name: ""},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/sessions/"+tc.code+"/join", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test StateHandler
func TestStateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSessionServiceInterface(ctrl)
	handler := NewSessionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/sessions/:code/state", handler.StateHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			State("ABCDE").
			Return(session.State{
				Session:      model.Session{SessionID: "sess1", Code: "ABCDE", Status: model.SessionActive},
				Participants: []model.Participant{{ParticipantID: "p1", Name: "alice"}},
				Items:        []model.Item{{ItemID: "i1", Name: "Mystery Box"}},
				ActiveRound:  &model.Round{RoundID: "round1", Number: 1, Status: model.RoundActive},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/sessions/ABCDE/state", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "ABCDE", data["session"].(map[string]any)["code"])
		require.NotNil(t, data["active_round"])
	})

	t.Run("unknown_code", func(t *testing.T) {
		mockService.EXPECT().
			State("ZZZZZ").
			Return(session.State{}, auctionerrors.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/sessions/ZZZZZ/state", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test AddItemHandler
func TestAddItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSessionServiceInterface(ctrl)
	handler := NewSessionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sessions/:code/items", handler.AddItemHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			AddItem("ABCDE", "admin-tok", session.AddItemInput{Name: "Mystery Box", AnonMode: model.AnonMode("hidden"), AnonHint: "it rattles"}).
			Return(model.Item{ItemID: "i1", Name: "Mystery Box", Status: model.ItemPending}, nil)

		body, _ := json.Marshal(helpers.AddItemRequest{Name: "Mystery Box", AnonMode: "hidden", AnonHint: "it rattles"})
		req := httptest.NewRequest(http.MethodPost, "/sessions/ABCDE/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer admin-tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("non_admin_rejected", func(t *testing.T) {
		mockService.EXPECT().
			AddItem("ABCDE", "player-tok", gomock.Any()).
			Return(model.Item{}, auctionerrors.ErrUnauthorized)

		body, _ := json.Marshal(helpers.AddItemRequest{Name: "Nope"})
		req := httptest.NewRequest(http.MethodPost, "/sessions/ABCDE/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer player-tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad_anon_mode_rejected_at_binding", func(t *testing.T) {
		body, _ := json.Marshal(helpers.AddItemRequest{Name: "ok", AnonMode: "mystery"})
		req := httptest.NewRequest(http.MethodPost, "/sessions/ABCDE/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer admin-tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
