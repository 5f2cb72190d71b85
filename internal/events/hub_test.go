package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, code string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(code, conn)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishReachesSessionClients(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "ABCDE")
	other := dialHub(t, hub, "FGHIJ")

	require.Equal(t, 1, hub.ClientCount("ABCDE"))

	hub.Publish("ABCDE", EventRoundStarted, map[string]any{"round_id": "round1", "number": 1})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, EventRoundStarted, event.Type)
	require.Equal(t, "round1", event.Payload["round_id"])

	// the other session hears nothing
	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	var stray Event
	require.Error(t, other.ReadJSON(&stray))
}

func TestHub_UnregisterRemovesClient(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "ABCDE")

	require.Equal(t, 1, hub.ClientCount("ABCDE"))

	hub.mu.Lock()
	var registered *websocket.Conn
	for c := range hub.conns["ABCDE"] {
		registered = c
	}
	hub.mu.Unlock()

	hub.Unregister("ABCDE", registered)
	require.Equal(t, 0, hub.ClientCount("ABCDE"))
	_ = conn
}

func TestHub_EvictsDeadClients(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "ABCDE")
	require.NoError(t, conn.Close())

	// publishing to the closed conn eventually fails and evicts it
	require.Eventually(t, func() bool {
		hub.Publish("ABCDE", EventSessionEnded, nil)
		return hub.ClientCount("ABCDE") == 0
	}, 2*time.Second, 10*time.Millisecond)
}
