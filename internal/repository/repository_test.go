package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gig-market/internal/marketerrors"
	model "gig-market/internal/models"

	"github.com/stretchr/testify/require"
)

func newGig(gigID, ownerID, title string, createdAt time.Time) model.Gig {
	return model.Gig{
		GigID:       gigID,
		Title:       title,
		Description: "description",
		Budget:      500,
		OwnerID:     ownerID,
		Status:      model.GigStatusOpen,
		CreatedAt:   createdAt,
	}
}

func newBid(bidID, gigID, freelancerID string, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:        bidID,
		GigID:        gigID,
		FreelancerID: freelancerID,
		Message:      "I can do this",
		Price:        400,
		Status:       model.BidStatusPending,
		CreatedAt:    createdAt,
	}
}

func TestMemoryRepo_CreateBid(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateGig(ctx, newGig("gig1", "owner1", "Build a website", now)))

	// first bid succeeds
	require.NoError(t, repo.CreateBid(ctx, newBid("bid1", "gig1", "user1", now)))

	// second bid by the same freelancer on the same gig violates uniqueness
	err := repo.CreateBid(ctx, newBid("bid2", "gig1", "user1", now))
	require.ErrorIs(t, err, marketerrors.ErrDuplicateBid)

	// same freelancer, different gig is fine
	require.NoError(t, repo.CreateGig(ctx, newGig("gig2", "owner1", "Logo design", now)))
	require.NoError(t, repo.CreateBid(ctx, newBid("bid3", "gig2", "user1", now)))

	// missing gig
	err = repo.CreateBid(ctx, newBid("bid4", "nonexistent", "user1", now))
	require.ErrorIs(t, err, marketerrors.ErrGigNotFound)
}

func TestMemoryRepo_GetBidForGig(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateGig(ctx, newGig("gig1", "owner1", "Build a website", now)))
	require.NoError(t, repo.CreateBid(ctx, newBid("bid1", "gig1", "user1", now)))

	bid, err := repo.GetBidForGig(ctx, "gig1", "user1")
	require.NoError(t, err)
	require.Equal(t, "bid1", bid.BidID)

	_, err = repo.GetBidForGig(ctx, "gig1", "user2")
	require.ErrorIs(t, err, marketerrors.ErrBidNotFound)
}

func TestMemoryRepo_ListOpenGigs(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateGig(ctx, newGig("gig1", "owner1", "Build a website", now.Add(-2*time.Hour))))
	require.NoError(t, repo.CreateGig(ctx, newGig("gig2", "owner2", "Design a logo", now.Add(-1*time.Hour))))

	assigned := newGig("gig3", "owner3", "Website copywriting", now)
	assigned.Status = model.GigStatusAssigned
	require.NoError(t, repo.CreateGig(ctx, assigned))

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "no_filter_newest_first", search: "", wantIDs: []string{"gig2", "gig1"}},
		{name: "title_filter_case_insensitive", search: "WEBSITE", wantIDs: []string{"gig1"}},
		{name: "no_match", search: "mobile app", wantIDs: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gigs, err := repo.ListOpenGigs(ctx, tc.search)
			require.NoError(t, err)

			ids := make([]string, 0, len(gigs))
			for _, gig := range gigs {
				ids = append(ids, gig.GigID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestMemoryRepo_HireBid(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateGig(ctx, newGig("gig1", "owner1", "Build a website", now)))
	require.NoError(t, repo.CreateBid(ctx, newBid("bid1", "gig1", "user1", now)))
	require.NoError(t, repo.CreateBid(ctx, newBid("bid2", "gig1", "user2", now)))

	gig, bid, err := repo.HireBid(ctx, "gig1", "bid1")
	require.NoError(t, err)
	require.Equal(t, model.GigStatusAssigned, gig.Status)
	require.Equal(t, model.BidStatusHired, bid.Status)

	// every other bid of the gig settled to rejected in the same operation
	other, err := repo.GetBidByID(ctx, "bid2")
	require.NoError(t, err)
	require.Equal(t, model.BidStatusRejected, other.Status)

	// second hire on the assigned gig fails and changes nothing
	_, _, err = repo.HireBid(ctx, "gig1", "bid2")
	require.ErrorIs(t, err, marketerrors.ErrGigAlreadyAssigned)

	other, err = repo.GetBidByID(ctx, "bid2")
	require.NoError(t, err)
	require.Equal(t, model.BidStatusRejected, other.Status)
}

func TestMemoryRepo_HireBid_Errors(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateGig(ctx, newGig("gig1", "owner1", "Build a website", now)))
	require.NoError(t, repo.CreateGig(ctx, newGig("gig2", "owner2", "Design a logo", now)))
	require.NoError(t, repo.CreateBid(ctx, newBid("bid1", "gig1", "user1", now)))

	// unknown gig
	_, _, err := repo.HireBid(ctx, "nonexistent", "bid1")
	require.ErrorIs(t, err, marketerrors.ErrGigNotFound)

	// unknown bid
	_, _, err = repo.HireBid(ctx, "gig1", "nonexistent")
	require.ErrorIs(t, err, marketerrors.ErrBidNotFound)

	// bid belonging to a different gig
	_, _, err = repo.HireBid(ctx, "gig2", "bid1")
	require.ErrorIs(t, err, marketerrors.ErrBidNotFound)

	// failed attempts left the gig open
	gig, err := repo.GetGigByID(ctx, "gig1")
	require.NoError(t, err)
	require.Equal(t, model.GigStatusOpen, gig.Status)
}

// TestMemoryRepo_HireBid_SingleWinner races many hire attempts for distinct
// bids on one gig: exactly one may commit, the rest must observe the
// assigned status and fail cleanly.
func TestMemoryRepo_HireBid_SingleWinner(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	const attempts = 32

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateGig(ctx, newGig("gig1", "owner1", "Build a website", now)))

	bidIDs := make([]string, attempts)
	for i := range bidIDs {
		bidIDs[i] = "bid" + string(rune('A'+i))
		require.NoError(t, repo.CreateBid(ctx, newBid(bidIDs[i], "gig1", "user"+string(rune('A'+i)), now)))
	}

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for _, bidID := range bidIDs {
		wg.Add(1)
		go func(bidID string) {
			defer wg.Done()
			_, _, err := repo.HireBid(ctx, "gig1", bidID)
			results <- err
		}(bidID)
	}
	wg.Wait()
	close(results)

	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, marketerrors.ErrGigAlreadyAssigned):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, attempts-1, conflicts)

	// post-state: one hired bid, everything else rejected
	bids, err := repo.ListBidsByGig(ctx, "gig1")
	require.NoError(t, err)
	require.Len(t, bids, attempts)

	hired := 0
	for _, bid := range bids {
		switch bid.Status {
		case model.BidStatusHired:
			hired++
		case model.BidStatusRejected:
		default:
			t.Fatalf("bid %s left in status %s", bid.BidID, bid.Status)
		}
	}
	require.Equal(t, 1, hired)
}
