package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gig-market/internal/events"
	market "gig-market/internal/marketService"
	"gig-market/internal/notify"
	"gig-market/internal/repository"
	"gig-market/internal/server"
	"gig-market/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Warn("no .env file loaded", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := buildRepository()

	// The session hub is built once here and injected everywhere; nothing
	// reaches for it through a global.
	hub := notify.NewHub()
	go hub.Run(ctx)

	notifier := buildNotifier(ctx, hub)

	// Keep the interface value nil when archival is off, a typed nil would
	// defeat the service's nil check.
	var publisher market.HireEventPublisher
	if p := buildEventPublisher(); p != nil {
		defer p.Close()
		publisher = p
	}

	marketSvc := market.NewMarketService(repo, notifier, publisher)

	router := server.SetupRouter(marketSvc, hub)

	srv := &http.Server{
		Addr:    getPort(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()
	utils.Info("marketplace server started", map[string]any{"addr": srv.Addr})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}

// buildRepository picks the entity store: Postgres when POSTGRES_CONN is
// set, otherwise the in-memory store for local development.
func buildRepository() repository.MarketDB {
	connStr := os.Getenv("POSTGRES_CONN")
	if connStr == "" {
		utils.Warn("POSTGRES_CONN not set, using in-memory store", nil)
		return repository.NewMemoryRepo()
	}

	repo, err := repository.NewPostgresRepo(connStr)
	if err != nil {
		utils.Fatal("failed to connect to postgres", map[string]any{"error": err.Error()})
	}
	utils.Info("connected to postgres", nil)
	return repo
}

// buildNotifier wires notifications through Redis when REDIS_ADDR is set so
// every instance of the service delivers to its local sessions; without it
// notifications stay in-process.
func buildNotifier(ctx context.Context, hub *notify.Hub) market.Notifier {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return hub
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}

	bridge, err := notify.NewBridge(addr, os.Getenv("REDIS_PASSWORD"), db, hub)
	if err != nil {
		utils.Fatal("failed to connect to redis", map[string]any{"error": err.Error()})
	}

	go func() {
		if err := bridge.Run(ctx); err != nil && ctx.Err() == nil {
			utils.Error("notification bridge stopped", map[string]any{"error": err.Error()})
		}
	}()

	utils.Info("notifications bridged through redis", map[string]any{"addr": addr})
	return bridge
}

// buildEventPublisher enables hire-event archival when NATS_URL is set
func buildEventPublisher() *events.Publisher {
	url := os.Getenv("NATS_URL")
	if url == "" {
		return nil
	}

	publisher, err := events.NewPublisher(url)
	if err != nil {
		utils.Fatal("failed to connect to nats", map[string]any{"error": err.Error()})
	}
	utils.Info("hire events archived to jetstream", map[string]any{"url": url})
	return publisher
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
