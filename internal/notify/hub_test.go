package notify

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func setupWSServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-User-ID"))
		c.Next()
	}, NewHandler(hub).ServeWS)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return hub, server
}

func dialWS(t *testing.T, server *httptest.Server, userID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, map[string][]string{"X-User-ID": {userID}})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(data, &envelope))
	return envelope
}

func TestHub_WelcomeOnJoin(t *testing.T) {
	hub, server := setupWSServer(t)

	conn := dialWS(t, server, "user1")
	envelope := readEnvelope(t, conn)
	require.Equal(t, "connected", envelope.Event)

	data := envelope.Data.(map[string]any)
	require.NotEmpty(t, data["session_id"])

	require.Eventually(t, func() bool {
		return hub.SessionCount("user1") == 1
	}, 2*time.Second, 10*time.Millisecond)
}

// Every session joined under the same user receives the event.
func TestHub_EmitToUser_FanOut(t *testing.T) {
	hub, server := setupWSServer(t)

	first := dialWS(t, server, "user2")
	second := dialWS(t, server, "user2")
	readEnvelope(t, first)
	readEnvelope(t, second)

	require.Eventually(t, func() bool {
		return hub.SessionCount("user2") == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.EmitToUser("user2", "notification", map[string]any{
		"type":   "hired",
		"gig_id": "gig1",
	}))

	for _, conn := range []*websocket.Conn{first, second} {
		envelope := readEnvelope(t, conn)
		require.Equal(t, "notification", envelope.Event)

		data := envelope.Data.(map[string]any)
		require.Equal(t, "hired", data["type"])
		require.Equal(t, "gig1", data["gig_id"])
	}
}

// Events addressed to other users never leak into a session.
func TestHub_EmitToUser_Isolation(t *testing.T) {
	hub, server := setupWSServer(t)

	target := dialWS(t, server, "user3")
	bystander := dialWS(t, server, "user4")
	readEnvelope(t, target)
	readEnvelope(t, bystander)

	require.Eventually(t, func() bool {
		return hub.SessionCount("user3") == 1 && hub.SessionCount("user4") == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.EmitToUser("user3", "notification", map[string]any{"type": "hired"}))

	envelope := readEnvelope(t, target)
	require.Equal(t, "notification", envelope.Event)

	require.NoError(t, bystander.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := bystander.ReadMessage()
	require.Error(t, err, "bystander should time out with no message")
}

// A user with no live sessions is not an error; the event is dropped.
func TestHub_EmitToUser_AbsentUser(t *testing.T) {
	hub, _ := setupWSServer(t)

	require.NoError(t, hub.EmitToUser("nobody", "notification", map[string]any{"type": "hired"}))
	require.Equal(t, 0, hub.SessionCount("nobody"))
}

func TestHub_SessionDetachesOnDisconnect(t *testing.T) {
	hub, server := setupWSServer(t)

	conn := dialWS(t, server, "user5")
	readEnvelope(t, conn)

	require.Eventually(t, func() bool {
		return hub.SessionCount("user5") == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.SessionCount("user5") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

// TestHub_ImmediateDisconnect churns sessions that drop without reading
// anything. A disconnect right after the upgrade closes the Send channel
// from the hub's Run loop, so the handler must never write to it once the
// session is joined.
func TestHub_ImmediateDisconnect(t *testing.T) {
	hub, server := setupWSServer(t)

	for i := 0; i < 50; i++ {
		conn := dialWS(t, server, "user6")
		conn.Close()
	}

	require.Eventually(t, func() bool {
		return hub.SessionCount("user6") == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestMarshalEnvelope(t *testing.T) {
	data, err := MarshalEnvelope("notification", map[string]any{"type": "hired"})
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(data, &envelope))
	require.Equal(t, "notification", envelope.Event)
	require.False(t, envelope.Timestamp.IsZero())

	// unencodable payload surfaces the only error EmitToUser can return
	_, err = MarshalEnvelope("notification", make(chan int))
	require.Error(t, err)
}
