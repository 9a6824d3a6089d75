package marketerrors

import "errors"

// Repository-level errors
var (
	ErrGigNotFound = errors.New("gig not found")
	ErrBidNotFound = errors.New("bid not found")
)

// business logic errors
var (
	ErrInvalidGig         = errors.New("invalid gig")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrNotGigOwner        = errors.New("not authorized for this gig")
	ErrOwnGigBid          = errors.New("cannot bid on own gig")
	ErrGigNotOpen         = errors.New("gig is no longer open for bidding")
	ErrGigAlreadyAssigned = errors.New("gig has already been assigned")
	ErrDuplicateBid       = errors.New("bid already placed on this gig")
)
