package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	market "gig-market/internal/marketService"
	model "gig-market/internal/models"
	"gig-market/internal/notify"
	"gig-market/internal/repository"
	"gig-market/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with the in-memory store for
// integration testing. Notifications go to a live hub with no sessions.
func SetupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := repository.NewMemoryRepo()
	hub := notify.NewHub()
	go hub.Run(ctx)

	service := market.NewMarketService(repo, hub, nil)
	return server.SetupRouter(service, hub)
}

// SetupTestRouterWithGigs initializes the router and seeds the store with gigs.
func SetupTestRouterWithGigs(t *testing.T, gigs ...model.Gig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := repository.NewMemoryRepo()
	for _, gig := range gigs {
		if err := repo.CreateGig(context.Background(), gig); err != nil {
			t.Fatalf("failed to seed gig: %v", err)
		}
	}

	hub := notify.NewHub()
	go hub.Run(ctx)

	service := market.NewMarketService(repo, hub, nil)
	return server.SetupRouter(service, hub)
}

// ExecuteRequestAndParse executes an HTTP request as the given user and
// parses the response envelope. An empty userID sends no identity header.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
