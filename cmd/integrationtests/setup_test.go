package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	auction "github.com/brandonecarr/bidwars/internal/auctionService"
	"github.com/brandonecarr/bidwars/internal/events"
	"github.com/brandonecarr/bidwars/internal/ledger"
	"github.com/brandonecarr/bidwars/internal/repository"
	"github.com/brandonecarr/bidwars/internal/server"
	session "github.com/brandonecarr/bidwars/internal/sessionService"
)

// SetupTestRouter initializes the full stack on an in-memory repository for
// integration testing. WebSocket streaming is left off; events go nowhere.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	led := ledger.NewLedger(repo)
	locks := auction.NewRoundLocks()

	sessionSvc := session.NewService(repo)
	coordinator := auction.NewCoordinator(repo, led, locks)
	rounds := auction.NewStateMachine(repo, led, events.NopPublisher{}, locks)

	return server.SetupRouter(sessionSvc, coordinator, rounds, nil)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
// An empty token leaves the Authorization header unset.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope, returning its data payload when present.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, token, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok && w.Code < 400 {
			resp = data
		}
	}

	return resp, w
}
