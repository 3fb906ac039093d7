package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ANSH5252/LivePulse/utils"
)

// Event names pushed over the wire.
const (
	EventScoreUpdate     = "score_update"
	EventScanSuccess     = "scan_success"
	EventNewNotification = "new_notification"
	EventJoin            = "join"
)

// Event is the JSON envelope for every frame in both directions.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type envelope struct {
	// userID selects one private channel; zero means every subscriber.
	userID  int64
	payload []byte
}

type joinRequest struct {
	client *Client
	userID int64
}

// Hub owns the set of connected clients and fans events out to them.
// Delivery is fire-and-forget: no acknowledgment, no replay, and a
// subscriber that cannot keep up is dropped.
type Hub struct {
	log        *slog.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	joins      chan joinRequest
	publish    chan envelope
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		joins:      make(chan joinRequest, 16),
		publish:    make(chan envelope, 256),
	}
}

// Run owns all client state; it is the only goroutine that touches the
// client set. Returns when ctx is done.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return ctx.Err()

		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug("subscriber connected", slog.String("conn", client.id), slog.Int("total", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.log.Debug("subscriber disconnected", slog.String("conn", client.id), slog.Int("total", len(h.clients)))

		case join := <-h.joins:
			if h.clients[join.client] {
				join.client.userID = join.userID
				h.log.Debug("subscriber joined private channel",
					slog.String("conn", join.client.id), slog.Int64("userID", join.userID))
			}

		case env := <-h.publish:
			for client := range h.clients {
				if env.userID != 0 && client.userID != env.userID {
					continue
				}
				select {
				case client.send <- env.payload:
				default:
					// Slow subscriber; drop it rather than block the fanout.
					delete(h.clients, client)
					close(client.send)
					h.log.Warn("dropped slow subscriber", slog.String("conn", client.id))
				}
			}
		}
	}
}

// PublishScores pushes the full current scoreboard of a poll to every
// subscriber.
func (h *Hub) PublishScores(pollID int64, scores map[string]int64) {
	h.send(0, EventScoreUpdate, scoreUpdate{PollID: pollID, Scores: scores})
}

// NotifyScan tells one attendee their check-in was recorded.
func (h *Hub) NotifyScan(userID, pollID int64, pollTitle string) {
	h.send(userID, EventScanSuccess, scanSuccess{PollID: pollID, PollName: pollTitle})
}

// NotifyCode delivers one attendee their single-use vote code.
func (h *Hub) NotifyCode(userID int64, pollTitle, code string) {
	h.send(userID, EventNewNotification, newNotification{PollName: pollTitle, Token: code})
}

type scoreUpdate struct {
	PollID int64            `json:"poll_id"`
	Scores map[string]int64 `json:"scores"`
}

type scanSuccess struct {
	PollID   int64  `json:"poll_id"`
	PollName string `json:"poll_name"`
}

type newNotification struct {
	PollName string `json:"poll_name"`
	Token    string `json:"token"`
}

// send marshals and enqueues without blocking the caller; a full hub queue
// means the event is lost, never that the triggering operation fails.
func (h *Hub) send(userID int64, event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.log.Error("failed to marshal event", slog.String("event", event), utils.Err(err))
		return
	}
	payload, err := json.Marshal(Event{Event: event, Data: raw})
	if err != nil {
		h.log.Error("failed to marshal envelope", slog.String("event", event), utils.Err(err))
		return
	}

	select {
	case h.publish <- envelope{userID: userID, payload: payload}:
	default:
		h.log.Warn("event dropped, publish queue full", slog.String("event", event))
	}
}
