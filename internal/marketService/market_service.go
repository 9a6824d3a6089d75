package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gig-market/internal/marketerrors"
	"gig-market/internal/models"
	"gig-market/internal/repository"
	"gig-market/utils"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 2000
	maxMessageLen     = 500
)

// MarketService defines the business logic for the gig marketplace
type MarketService struct {
	repo     repository.MarketDB
	notifier Notifier
	events   HireEventPublisher
}

// NewMarketService creates a new MarketService instance. The notifier is
// constructed at process start and injected here; events may be nil when no
// event stream is configured.
func NewMarketService(repo repository.MarketDB, notifier Notifier, events HireEventPublisher) *MarketService {
	return &MarketService{
		repo:     repo,
		notifier: notifier,
		events:   events,
	}
}

// CreateGig validates and stores a new gig owned by the caller
func (s *MarketService) CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (models.Gig, error) {
	if err := validateGig(ownerID, title, description, budget); err != nil {
		return models.Gig{}, err
	}

	gig := models.Gig{
		GigID:       utils.GenerateID(),
		Title:       title,
		Description: description,
		Budget:      budget,
		OwnerID:     ownerID,
		Status:      models.GigStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateGig(ctx, gig); err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to create gig for user %s: %w", ownerID, err)
	}

	return gig, nil
}

func validateGig(ownerID, title, description string, budget float64) error {
	if ownerID == "" {
		return fmt.Errorf("service: %w - missing owner ID", marketerrors.ErrInvalidGig)
	}
	if title == "" || len(title) > maxTitleLen {
		return fmt.Errorf("service: %w - title must be 1-%d characters", marketerrors.ErrInvalidGig, maxTitleLen)
	}
	if description == "" || len(description) > maxDescriptionLen {
		return fmt.Errorf("service: %w - description must be 1-%d characters", marketerrors.ErrInvalidGig, maxDescriptionLen)
	}
	if budget <= 0 {
		return fmt.Errorf("service: %w - non-positive budget", marketerrors.ErrInvalidGig)
	}
	return nil
}

// ListOpenGigs returns open gigs, optionally filtered by a title search term
func (s *MarketService) ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error) {
	gigs, err := s.repo.ListOpenGigs(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open gigs: %w", err)
	}
	return gigs, nil
}

// GetGig returns a single gig by ID
func (s *MarketService) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	if gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - empty gig ID", marketerrors.ErrInvalidGig)
	}

	gig, err := s.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListGigsByOwner returns all gigs created by the caller
func (s *MarketService) ListGigsByOwner(ctx context.Context, ownerID string) ([]models.Gig, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", marketerrors.ErrInvalidGig)
	}

	gigs, err := s.repo.ListGigsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list gigs for user %s: %w", ownerID, err)
	}
	return gigs, nil
}

// PlaceBid validates the bid lifecycle rules and records a freelancer's bid.
// The duplicate pre-check here is only for a friendly error: two simultaneous
// first bids can both pass it, and the store's unique constraint settles the
// race.
func (s *MarketService) PlaceBid(ctx context.Context, gigID, freelancerID, message string, price float64) (models.Bid, error) {
	if err := validateBid(gigID, freelancerID, message, price); err != nil {
		return models.Bid{}, err
	}

	gig, err := s.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}

	if gig.OwnerID == freelancerID {
		return models.Bid{}, fmt.Errorf("service: %w - gig %s", marketerrors.ErrOwnGigBid, gigID)
	}

	if gig.Status != models.GigStatusOpen {
		return models.Bid{}, fmt.Errorf("service: %w - gig %s", marketerrors.ErrGigNotOpen, gigID)
	}

	if _, err := s.repo.GetBidForGig(ctx, gigID, freelancerID); err == nil {
		return models.Bid{}, fmt.Errorf("service: %w - gig %s", marketerrors.ErrDuplicateBid, gigID)
	} else if !errors.Is(err, marketerrors.ErrBidNotFound) {
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		GigID:        gigID,
		FreelancerID: freelancerID,
		Message:      message,
		Price:        price,
		Status:       models.BidStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on gig %s by user %s: %w", gigID, freelancerID, err)
	}

	return bid, nil
}

func validateBid(gigID, freelancerID, message string, price float64) error {
	if gigID == "" || freelancerID == "" {
		return fmt.Errorf("service: %w - missing gigID or freelancerID", marketerrors.ErrInvalidBid)
	}
	if message == "" || len(message) > maxMessageLen {
		return fmt.Errorf("service: %w - message must be 1-%d characters", marketerrors.ErrInvalidBid, maxMessageLen)
	}
	if price <= 0 {
		return fmt.Errorf("service: %w - non-positive price", marketerrors.ErrInvalidBid)
	}
	return nil
}

// ListBidsForGig returns all bids on a gig. Only the gig owner may see them.
func (s *MarketService) ListBidsForGig(ctx context.Context, gigID, requestingUserID string) ([]models.Bid, error) {
	if gigID == "" || requestingUserID == "" {
		return nil, fmt.Errorf("service: %w - missing gigID or userID", marketerrors.ErrInvalidBid)
	}

	gig, err := s.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}

	if gig.OwnerID != requestingUserID {
		return nil, fmt.Errorf("service: %w - user %s cannot view bids for gig %s", marketerrors.ErrNotGigOwner, requestingUserID, gigID)
	}

	bids, err := s.repo.ListBidsByGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for gig %s: %w", gigID, err)
	}
	return bids, nil
}

// ListBidsByFreelancer returns all bids placed by the caller
func (s *MarketService) ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	if freelancerID == "" {
		return nil, fmt.Errorf("service: %w - empty freelancer ID", marketerrors.ErrInvalidBid)
	}

	bids, err := s.repo.ListBidsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for user %s: %w", freelancerID, err)
	}
	return bids, nil
}
