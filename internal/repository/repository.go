package repository

import (
	"context"

	model "gig-market/internal/models"
)

// MarketDB defines the gig/bid storage interface for the marketplace.
// HireBid is the only mutating operation that spans both entity types and
// implementations must make it atomic: either the gig flips to assigned and
// every bid status settles, or nothing changes.
type MarketDB interface {
	CreateGig(ctx context.Context, gig model.Gig) error
	GetGigByID(ctx context.Context, gigID string) (model.Gig, error)
	ListOpenGigs(ctx context.Context, search string) ([]model.Gig, error)
	ListGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error)

	CreateBid(ctx context.Context, bid model.Bid) error
	GetBidByID(ctx context.Context, bidID string) (model.Bid, error)
	GetBidForGig(ctx context.Context, gigID, freelancerID string) (model.Bid, error)
	ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error)
	ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error)

	// HireBid flips the gig from open to assigned, marks the selected bid
	// hired and rejects every other pending bid of the gig in one atomic
	// unit. Returns ErrGigAlreadyAssigned when the gig is not open at the
	// moment of the swap, so at most one caller per gig ever succeeds.
	HireBid(ctx context.Context, gigID, bidID string) (model.Gig, model.Bid, error)
}
