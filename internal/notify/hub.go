package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"gig-market/utils"

	"github.com/gorilla/websocket"
)

// Envelope is the wire format for every event pushed to a session
type Envelope struct {
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Session represents one live WebSocket connection joined under a user ID.
// A user with several open tabs has several sessions.
type Session struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub tracks live sessions per user and broadcasts events to them. It is
// created once at process start and injected wherever notifications are
// sent; there is no package-level instance. Delivery is best-effort: events
// for users with no live session are silently dropped.
type Hub struct {
	sessions sync.Map // map[userID]*sync.Map of *Session -> bool

	join      chan *Session
	leave     chan *Session
	broadcast chan *userMessage
}

type userMessage struct {
	UserID  string
	Payload []byte
}

// NewHub creates a new session hub
func NewHub() *Hub {
	return &Hub{
		join:      make(chan *Session),
		leave:     make(chan *Session),
		broadcast: make(chan *userMessage, 256), // buffered so emitters never block on slow sessions
	}
}

// Run drives the hub's main loop until the context is cancelled.
// This should run in a goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case session := <-h.join:
			h.joinSession(session)

		case session := <-h.leave:
			h.leaveSession(session)

		case message := <-h.broadcast:
			h.deliver(message.UserID, message.Payload)
		}
	}
}

// Join registers a session under its user's channel
func (h *Hub) Join(session *Session) {
	h.join <- session
}

// Leave removes a session and closes its connection
func (h *Hub) Leave(session *Session) {
	h.leave <- session
}

// EmitToUser broadcasts an event to every session joined under userID.
// Returns an error only when the payload cannot be encoded; an absent or
// unreachable user is not an error.
func (h *Hub) EmitToUser(userID, event string, payload any) error {
	data, err := MarshalEnvelope(event, payload)
	if err != nil {
		return err
	}
	h.Broadcast(userID, data)
	return nil
}

// Broadcast queues an already-encoded payload for every session of a user
func (h *Hub) Broadcast(userID string, payload []byte) {
	h.broadcast <- &userMessage{UserID: userID, Payload: payload}
}

// SessionCount returns the number of live sessions for a user
func (h *Hub) SessionCount(userID string) int {
	count := 0
	if sessions, ok := h.sessions.Load(userID); ok {
		sessions.(*sync.Map).Range(func(_, _ any) bool {
			count++
			return true
		})
	}
	return count
}

// MarshalEnvelope encodes an event payload into the wire envelope
func MarshalEnvelope(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(Envelope{
		Event:     event,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", event, err)
	}
	return data, nil
}

func (h *Hub) joinSession(session *Session) {
	sessions, _ := h.sessions.LoadOrStore(session.UserID, &sync.Map{})
	sessions.(*sync.Map).Store(session, true)

	utils.Debug("session joined", map[string]any{
		"session_id": session.ID,
		"user_id":    session.UserID,
	})

	go session.writePump()
}

func (h *Hub) leaveSession(session *Session) {
	sessions, ok := h.sessions.Load(session.UserID)
	if !ok {
		return
	}
	if _, present := sessions.(*sync.Map).LoadAndDelete(session); !present {
		return // already left, avoid double close
	}

	close(session.Send)
	session.Conn.Close()

	utils.Debug("session left", map[string]any{
		"session_id": session.ID,
		"user_id":    session.UserID,
	})
}

func (h *Hub) deliver(userID string, payload []byte) {
	sessions, ok := h.sessions.Load(userID)
	if !ok {
		return // nobody listening, drop
	}

	sessions.(*sync.Map).Range(func(key, _ any) bool {
		session := key.(*Session)
		select {
		case session.Send <- payload:
		default:
			// Send buffer full: disconnect the slow session so one stuck
			// connection cannot block the rest.
			go h.Leave(session)
		}
		return true
	})
}

// writePump pumps messages from the Send channel to the websocket connection
func (s *Session) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		s.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.Send:
			s.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				s.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := s.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			// Ping to keep the connection alive
			s.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection and detaches the session on disconnect
func (s *Session) readPump(hub *Hub) {
	defer hub.Leave(s)

	s.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	s.Conn.SetPongHandler(func(string) error {
		s.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := s.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				utils.Warn("websocket read error", map[string]any{
					"session_id": s.ID,
					"error":      err.Error(),
				})
			}
			return
		}
	}
}

// StartReadPump starts the read pump for this session
func (s *Session) StartReadPump(hub *Hub) {
	go s.readPump(hub)
}
