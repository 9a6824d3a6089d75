package models

import "time"

// Gig statuses. A gig only ever moves open -> assigned, exactly once.
const (
	GigStatusOpen     = "open"
	GigStatusAssigned = "assigned"
)

// Bid statuses. A bid only ever leaves pending through the hire transaction.
const (
	BidStatusPending  = "pending"
	BidStatusHired    = "hired"
	BidStatusRejected = "rejected"
)

// User represents a marketplace participant. Identity is managed by an
// external auth service; this core only references users by ID.
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Gig represents a client-posted project open for bidding
type Gig struct {
	GigID       string    `json:"gig_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	OwnerID     string    `json:"owner_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a freelancer's proposal against a gig
type Bid struct {
	BidID        string    `json:"bid_id"`
	GigID        string    `json:"gig_id"`
	FreelancerID string    `json:"freelancer_id"`
	Message      string    `json:"message"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
