package helpers

import (
	"time"

	model "gig-market/internal/models"
)

// Request/Response DTOs
type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=2000"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	GigID   string  `json:"gig_id" binding:"required"`
	Message string  `json:"message" binding:"required,max=500"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

type GigResponse struct {
	GigID       string  `json:"gig_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	OwnerID     string  `json:"owner_id"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	GigID        string  `json:"gig_id"`
	FreelancerID string  `json:"freelancer_id"`
	Message      string  `json:"message"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// HireResponse carries the committed state of both entities after a hire
type HireResponse struct {
	Gig GigResponse `json:"gig"`
	Bid BidResponse `json:"bid"`
}

func NewGigResponse(gig model.Gig) GigResponse {
	return GigResponse{
		GigID:       gig.GigID,
		Title:       gig.Title,
		Description: gig.Description,
		Budget:      gig.Budget,
		OwnerID:     gig.OwnerID,
		Status:      gig.Status,
		CreatedAt:   gig.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:        bid.BidID,
		GigID:        bid.GigID,
		FreelancerID: bid.FreelancerID,
		Message:      bid.Message,
		Price:        bid.Price,
		Status:       bid.Status,
		CreatedAt:    bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewGigResponses(gigs []model.Gig) []GigResponse {
	out := make([]GigResponse, 0, len(gigs))
	for _, gig := range gigs {
		out = append(out, NewGigResponse(gig))
	}
	return out
}

func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		out = append(out, NewBidResponse(bid))
	}
	return out
}
