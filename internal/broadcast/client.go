package broadcast

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ANSH5252/LivePulse/utils"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"log/slog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser dashboards connect cross-origin; access control happens at the
	// join step, not the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket subscriber. userID is zero for anonymous public
// dashboard connections and is set by a join frame for private delivery.
type Client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID int64

	// authUserID is the authenticated principal on the socket, if any. A
	// join claim must match it; anything else is ignored.
	authUserID int64
}

type joinPayload struct {
	UserID int64 `json:"user_id"`
}

// ServeWS upgrades the request and registers the connection with the hub.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request, authUserID int64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", utils.Err(err))
		return
	}

	client := &Client{
		id:         uuid.NewString(),
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, 64),
		authUserID: authUserID,
	}

	hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var event Event
		if err := c.conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug("websocket read error", slog.String("conn", c.id), utils.Err(err))
			}
			break
		}

		if event.Event != EventJoin {
			continue
		}

		var join joinPayload
		if err := json.Unmarshal(event.Data, &join); err != nil {
			continue
		}
		if c.authUserID == 0 || join.UserID != c.authUserID {
			c.hub.log.Warn("rejected join for foreign user",
				slog.String("conn", c.id), slog.Int64("claimed", join.UserID))
			continue
		}

		c.hub.joins <- joinRequest{client: c, userID: join.UserID}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
