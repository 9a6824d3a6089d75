package notify

import (
	"net/http"

	"gig-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is enforced by the upstream gateway
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades authenticated HTTP requests to WebSocket sessions
type Handler struct {
	hub *Hub
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeWS handles GET /ws: it upgrades the connection and joins the session
// under the caller's user ID so EmitToUser can reach it.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	session := &Session{
		ID:     utils.GenerateID(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	// Queue the welcome before the session is visible to the hub: once the
	// read pump runs, a disconnect can close Send from the hub's Run loop.
	if welcome, err := MarshalEnvelope("connected", gin.H{"session_id": session.ID}); err == nil {
		session.Send <- welcome
	}

	h.hub.Join(session)
	session.StartReadPump(h.hub)
}
