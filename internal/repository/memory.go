package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gig-market/internal/marketerrors"
	model "gig-market/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB.
// The mutex serializes HireBid, which gives the same single-winner guarantee
// the Postgres implementation gets from its transaction.
type MemoryRepo struct {
	mu      sync.RWMutex
	gigs    map[string]model.Gig // key: gigID
	bids    map[string]model.Bid // key: bidID
	gigBids map[string][]string  // key: gigID -> bidIDs in placement order
	bidders map[string]string    // key: gigID "/" freelancerID -> bidID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		gigs:    make(map[string]model.Gig),
		bids:    make(map[string]model.Bid),
		gigBids: make(map[string][]string),
		bidders: make(map[string]string),
	}
}

func bidderKey(gigID, freelancerID string) string {
	return gigID + "/" + freelancerID
}

// CreateGig stores a new gig
func (r *MemoryRepo) CreateGig(_ context.Context, gig model.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gigs[gig.GigID] = gig
	return nil
}

// GetGigByID returns a single gig by ID
func (r *MemoryRepo) GetGigByID(_ context.Context, gigID string) (model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}
	return gig, nil
}

// ListOpenGigs returns open gigs, optionally filtered by a case-insensitive
// title substring, newest first
func (r *MemoryRepo) ListOpenGigs(_ context.Context, search string) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	gigs := make([]model.Gig, 0)
	for _, gig := range r.gigs {
		if gig.Status != model.GigStatusOpen {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(gig.Title), needle) {
			continue
		}
		gigs = append(gigs, gig)
	}

	sort.Slice(gigs, func(i, j int) bool { return gigs[i].CreatedAt.After(gigs[j].CreatedAt) })
	return gigs, nil
}

// ListGigsByOwner returns all gigs created by a user, newest first
func (r *MemoryRepo) ListGigsByOwner(_ context.Context, ownerID string) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gigs := make([]model.Gig, 0)
	for _, gig := range r.gigs {
		if gig.OwnerID == ownerID {
			gigs = append(gigs, gig)
		}
	}

	sort.Slice(gigs, func(i, j int) bool { return gigs[i].CreatedAt.After(gigs[j].CreatedAt) })
	return gigs, nil
}

// CreateBid records a freelancer's bid. The (gig, freelancer) uniqueness
// constraint is enforced here, mirroring the unique index in Postgres.
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gigs[bid.GigID]; !ok {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotFound)
	}

	key := bidderKey(bid.GigID, bid.FreelancerID)
	if _, ok := r.bidders[key]; ok {
		return fmt.Errorf("create bid for gig %s by user %s: %w", bid.GigID, bid.FreelancerID, marketerrors.ErrDuplicateBid)
	}

	r.bids[bid.BidID] = bid
	r.gigBids[bid.GigID] = append(r.gigBids[bid.GigID], bid.BidID)
	r.bidders[key] = bid.BidID
	return nil
}

// GetBidByID returns a single bid by ID
func (r *MemoryRepo) GetBidByID(_ context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidForGig returns the bid a freelancer placed on a gig, if any
func (r *MemoryRepo) GetBidForGig(_ context.Context, gigID, freelancerID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bidID, ok := r.bidders[bidderKey(gigID, freelancerID)]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid for gig %s by user %s: %w", gigID, freelancerID, marketerrors.ErrBidNotFound)
	}
	return r.bids[bidID], nil
}

// ListBidsByGig returns all bids for a gig, newest first
func (r *MemoryRepo) ListBidsByGig(_ context.Context, gigID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.gigBids[gigID]))
	for _, bidID := range r.gigBids[gigID] {
		bids = append(bids, r.bids[bidID])
	}

	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt.After(bids[j].CreatedAt) })
	return bids, nil
}

// ListBidsByFreelancer returns all bids placed by a user, newest first
func (r *MemoryRepo) ListBidsByFreelancer(_ context.Context, freelancerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids {
		if bid.FreelancerID == freelancerID {
			bids = append(bids, bid)
		}
	}

	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt.After(bids[j].CreatedAt) })
	return bids, nil
}

// HireBid performs the atomic hire transition under the write lock: the gig
// status is re-read inside the critical section, so concurrent hire attempts
// on the same gig observe either open (and win) or assigned (and fail).
func (r *MemoryRepo) HireBid(_ context.Context, gigID, bidID string) (model.Gig, model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, marketerrors.ErrGigNotFound)
	}

	bid, ok := r.bids[bidID]
	if !ok || bid.GigID != gigID {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: %w", bidID, gigID, marketerrors.ErrBidNotFound)
	}

	if gig.Status != model.GigStatusOpen {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s for gig %s: %w", bidID, gigID, marketerrors.ErrGigAlreadyAssigned)
	}

	gig.Status = model.GigStatusAssigned
	r.gigs[gigID] = gig

	bid.Status = model.BidStatusHired
	r.bids[bidID] = bid

	for _, otherID := range r.gigBids[gigID] {
		if otherID == bidID {
			continue
		}
		other := r.bids[otherID]
		if other.Status == model.BidStatusPending {
			other.Status = model.BidStatusRejected
			r.bids[otherID] = other
		}
	}

	return gig, bid, nil
}
