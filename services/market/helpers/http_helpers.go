package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"gig-market/internal/marketerrors"
	"gig-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Conflict-class failures (lost hire race, duplicate bid, closed gig) map to
// 409; a persistence failure is the only path to 500 and is safe to retry
// since nothing was committed.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrGigNotFound):
		return http.StatusNotFound, "gig not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrNotGigOwner):
		return http.StatusForbidden, "not authorized for this gig"
	case errors.Is(err, marketerrors.ErrOwnGigBid):
		return http.StatusForbidden, "cannot bid on your own gig"
	case errors.Is(err, marketerrors.ErrGigAlreadyAssigned):
		return http.StatusConflict, "gig has already been assigned"
	case errors.Is(err, marketerrors.ErrGigNotOpen):
		return http.StatusConflict, "gig is no longer open for bidding"
	case errors.Is(err, marketerrors.ErrDuplicateBid):
		return http.StatusConflict, "bid already placed on this gig"
	case errors.Is(err, marketerrors.ErrInvalidGig):
		return http.StatusBadRequest, "invalid gig details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
