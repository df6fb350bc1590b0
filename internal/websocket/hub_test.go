package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

// dial connects a real websocket client to a test server wrapping the hub
func dial(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, logger, w, r)
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func waitForConnections(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetTotalConnections() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d connections", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastScore(t *testing.T) {
	hub := newTestHub(t)
	conn, cleanup := dial(t, hub)
	defer cleanup()

	waitForConnections(t, hub, 1)

	entry := domain.NewLeaderboardEntry("SnakeMaster", 1500, domain.ModeWalls)
	hub.BroadcastScore(entry)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, MessageTypeScoreSubmitted, msg.Type)

	payload, err := json.Marshal(msg.Data)
	require.NoError(t, err)
	var got domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, 1500, got.Score)
}

func TestHub_PingPong(t *testing.T) {
	hub := newTestHub(t)
	conn, cleanup := dial(t, hub)
	defer cleanup()

	waitForConnections(t, hub, 1)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypePing}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageTypePong, msg.Type)
}

func TestHub_TracksDisconnects(t *testing.T) {
	hub := newTestHub(t)
	conn, cleanup := dial(t, hub)

	waitForConnections(t, hub, 1)
	conn.Close()
	waitForConnections(t, hub, 0)

	cleanup()
	assert.Equal(t, 0, hub.GetTotalConnections())
}
