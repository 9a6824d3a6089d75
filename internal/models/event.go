package models

import "time"

// HireEvent is the record published to the event stream after a hire commits.
// It is produced outside the store transaction and delivery is best-effort.
type HireEvent struct {
	EventID      string    `json:"event_id"`
	GigID        string    `json:"gig_id"`
	GigTitle     string    `json:"gig_title"`
	BidID        string    `json:"bid_id"`
	OwnerID      string    `json:"owner_id"`
	FreelancerID string    `json:"freelancer_id"`
	Price        float64   `json:"price"`
	Timestamp    time.Time `json:"timestamp"`
}
