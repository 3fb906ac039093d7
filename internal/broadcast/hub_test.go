package broadcast

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle gives the hub goroutine time to process register/join traffic
// before the test publishes.
const settle = 100 * time.Millisecond

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authUserID int64
		if raw := r.URL.Query().Get("auth"); raw != "" {
			authUserID, _ = strconv.ParseInt(raw, 10, 64)
		}
		ServeWS(hub, w, r, authUserID)
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, authUserID int64) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	if authUserID != 0 {
		url += "?auth=" + strconv.FormatInt(authUserID, 10)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func assertNoEvent(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))

	var event Event
	err := conn.ReadJSON(&event)
	assert.Error(t, err, "expected no frame, got %+v", event)
}

func sendJoin(t *testing.T, conn *websocket.Conn, userID int64) {
	t.Helper()

	data, err := json.Marshal(joinPayload{UserID: userID})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Event{Event: EventJoin, Data: data}))
}

func TestHub_ScoreUpdateReachesAllSubscribers(t *testing.T) {
	hub, srv := startHub(t)

	first := dial(t, srv, 0)
	second := dial(t, srv, 0)
	time.Sleep(settle)

	hub.PublishScores(7, map[string]int64{"Red": 5, "Blue": 3})

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		assert.Equal(t, EventScoreUpdate, event.Event)

		var update scoreUpdate
		require.NoError(t, json.Unmarshal(event.Data, &update))
		assert.Equal(t, int64(7), update.PollID)
		assert.Equal(t, map[string]int64{"Red": 5, "Blue": 3}, update.Scores)
	}
}

func TestHub_PrivateDeliveryAfterJoin(t *testing.T) {
	hub, srv := startHub(t)

	joined := dial(t, srv, 42)
	anonymous := dial(t, srv, 0)
	time.Sleep(settle)

	sendJoin(t, joined, 42)
	time.Sleep(settle)

	hub.NotifyCode(42, "Best Talk", "AB12XYZ")

	event := readEvent(t, joined)
	assert.Equal(t, EventNewNotification, event.Event)

	var note newNotification
	require.NoError(t, json.Unmarshal(event.Data, &note))
	assert.Equal(t, "Best Talk", note.PollName)
	assert.Equal(t, "AB12XYZ", note.Token)

	assertNoEvent(t, anonymous)
}

func TestHub_ScanNotificationTargetsOneUser(t *testing.T) {
	hub, srv := startHub(t)

	target := dial(t, srv, 42)
	other := dial(t, srv, 43)
	time.Sleep(settle)

	sendJoin(t, target, 42)
	sendJoin(t, other, 43)
	time.Sleep(settle)

	hub.NotifyScan(42, 7, "Best Talk")

	event := readEvent(t, target)
	assert.Equal(t, EventScanSuccess, event.Event)

	var scan scanSuccess
	require.NoError(t, json.Unmarshal(event.Data, &scan))
	assert.Equal(t, int64(7), scan.PollID)
	assert.Equal(t, "Best Talk", scan.PollName)

	assertNoEvent(t, other)
}

func TestHub_ForeignJoinRejected(t *testing.T) {
	hub, srv := startHub(t)

	conn := dial(t, srv, 42)
	time.Sleep(settle)

	// Claiming another user's channel is ignored.
	sendJoin(t, conn, 43)
	time.Sleep(settle)

	hub.NotifyCode(43, "Best Talk", "AB12XYZ")

	assertNoEvent(t, conn)
}

func TestHub_AnonymousJoinRejected(t *testing.T) {
	hub, srv := startHub(t)

	conn := dial(t, srv, 0)
	time.Sleep(settle)

	sendJoin(t, conn, 42)
	time.Sleep(settle)

	hub.NotifyCode(42, "Best Talk", "AB12XYZ")

	assertNoEvent(t, conn)
}

func TestHub_DisconnectedClientIsRemoved(t *testing.T) {
	hub, srv := startHub(t)

	stays := dial(t, srv, 0)
	leaves := dial(t, srv, 0)
	time.Sleep(settle)

	require.NoError(t, leaves.Close())
	time.Sleep(settle)

	hub.PublishScores(7, map[string]int64{"Red": 1})

	event := readEvent(t, stays)
	assert.Equal(t, EventScoreUpdate, event.Event)
}
