package market

import (
	"context"
	"fmt"
	"time"

	"gig-market/internal/marketerrors"
	"gig-market/internal/models"
	"gig-market/utils"
)

// Notifier delivers real-time events to a user's active sessions.
// Delivery is best-effort: the hire path logs failures and moves on.
type Notifier interface {
	EmitToUser(userID, event string, payload any) error
}

// HireEventPublisher archives committed hire events to an event stream
type HireEventPublisher interface {
	PublishHired(ctx context.Context, event models.HireEvent) error
}

// Notification is the payload delivered to the hired freelancer
type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	GigID   string `json:"gig_id"`
	BidID   string `json:"bid_id"`
}

// Hire executes the atomic hire transition for a bid on behalf of the gig
// owner. Order matters: both lookups and the authorization check happen
// before any mutation, and the store call re-derives the gig status inside
// its own transaction, so a stale read here can at worst turn into a clean
// ErrGigAlreadyAssigned. On success the gig is assigned, the chosen bid is
// hired and every other pending bid of the gig is rejected; the freelancer
// notification and the event publication run after commit and cannot fail
// the hire.
func (s *MarketService) Hire(ctx context.Context, bidID, requestingUserID string) (models.Gig, models.Bid, error) {
	if bidID == "" || requestingUserID == "" {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: %w - missing bidID or userID", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBidByID(ctx, bidID)
	if err != nil {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	gig, err := s.repo.GetGigByID(ctx, bid.GigID)
	if err != nil {
		// A bid pointing at a missing gig is a data-integrity problem, but
		// the caller still just sees NotFound.
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: failed to get gig %s for bid %s: %w", bid.GigID, bidID, err)
	}

	if gig.OwnerID != requestingUserID {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: %w - user %s cannot hire for gig %s", marketerrors.ErrNotGigOwner, requestingUserID, gig.GigID)
	}

	gig, bid, err = s.repo.HireBid(ctx, gig.GigID, bid.BidID)
	if err != nil {
		return models.Gig{}, models.Bid{}, fmt.Errorf("service: failed to hire bid %s: %w", bidID, err)
	}

	go s.notifyHired(gig, bid)
	go s.publishHired(gig, bid)

	return gig, bid, nil
}

// notifyHired tells the hired freelancer's live sessions about the hire.
// Runs detached from the request; failures are logged and dropped.
func (s *MarketService) notifyHired(gig models.Gig, bid models.Bid) {
	notification := Notification{
		Type:    "hired",
		Message: fmt.Sprintf("You have been hired for %s!", gig.Title),
		GigID:   gig.GigID,
		BidID:   bid.BidID,
	}

	if err := s.notifier.EmitToUser(bid.FreelancerID, "notification", notification); err != nil {
		utils.Error("hire notification failed", map[string]any{
			"gig_id":        gig.GigID,
			"bid_id":        bid.BidID,
			"freelancer_id": bid.FreelancerID,
			"error":         err.Error(),
		})
	}
}

// publishHired archives the hire on the event stream, when one is configured
func (s *MarketService) publishHired(gig models.Gig, bid models.Bid) {
	if s.events == nil {
		return
	}

	event := models.HireEvent{
		EventID:      utils.GenerateID(),
		GigID:        gig.GigID,
		GigTitle:     gig.Title,
		BidID:        bid.BidID,
		OwnerID:      gig.OwnerID,
		FreelancerID: bid.FreelancerID,
		Price:        bid.Price,
		Timestamp:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.events.PublishHired(ctx, event); err != nil {
		utils.Error("hire event publication failed", map[string]any{
			"gig_id": gig.GigID,
			"bid_id": bid.BidID,
			"error":  err.Error(),
		})
	}
}
