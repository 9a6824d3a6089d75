package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	model "gig-market/internal/models"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "HIRE_EVENTS"
	subjectPrefix = "gigs.hired."
)

// Publisher archives committed hire events on a NATS JetStream stream.
// Publication happens after the store transaction commits and is strictly
// best-effort: the hire path logs failures and never retries or rolls back.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// NewPublisher connects to NATS and ensures the hire-event stream exists
func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Archive of committed hire transitions",
		Subjects:    []string{subjectPrefix + "*"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      30 * 24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create stream %s: %w", streamName, err)
	}

	return &Publisher{nc: nc, js: js}, nil
}

// PublishHired records a hire event on the stream
func (p *Publisher) PublishHired(ctx context.Context, event model.HireEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal hire event %s: %w", event.EventID, err)
	}

	if _, err := p.js.Publish(ctx, subjectPrefix+event.GigID, data); err != nil {
		return fmt.Errorf("publish hire event %s: %w", event.EventID, err)
	}
	return nil
}

// Close drains the NATS connection
func (p *Publisher) Close() {
	p.nc.Close()
}
