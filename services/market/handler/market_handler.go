package handler

import (
	"context"
	"fmt"
	"net/http"

	model "gig-market/internal/models"
	"gig-market/services/market/helpers"
	"gig-market/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (model.Gig, error)
	ListOpenGigs(ctx context.Context, search string) ([]model.Gig, error)
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error)
	PlaceBid(ctx context.Context, gigID, freelancerID, message string, price float64) (model.Bid, error)
	ListBidsForGig(ctx context.Context, gigID, requestingUserID string) ([]model.Bid, error)
	ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error)
	Hire(ctx context.Context, bidID, requestingUserID string) (model.Gig, model.Bid, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// CreateGigHandler handles POST /gigs
func (h *MarketHandler) CreateGigHandler(c *gin.Context) {
	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	userID := c.GetString("user_id")
	gig, err := h.service.CreateGig(c.Request.Context(), userID, req.Title, req.Description, req.Budget)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateGigHandler: failed to create gig", map[string]any{
			"handler": "CreateGigHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewGigResponse(gig), "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":  gig.GigID,
		"user_id": userID,
		"budget":  gig.Budget,
	})
}

// GetGigsHandler handles GET /gigs?search=
func (h *MarketHandler) GetGigsHandler(c *gin.Context) {
	search := c.Query("search")
	gigs, err := h.service.ListOpenGigs(c.Request.Context(), search)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGigsHandler: error listing gigs", map[string]any{"search": search, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewGigResponses(gigs), "gigs retrieved successfully")
}

// GetGigByIDHandler handles GET /gigs/:gig_id
func (h *MarketHandler) GetGigByIDHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	gig, err := h.service.GetGig(c.Request.Context(), gigID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGigByIDHandler: error retrieving gig", map[string]any{"gig_id": gigID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewGigResponse(gig), "gig retrieved successfully")
}

// GetMyGigsHandler handles GET /users/me/gigs
func (h *MarketHandler) GetMyGigsHandler(c *gin.Context) {
	userID := c.GetString("user_id")
	gigs, err := h.service.ListGigsByOwner(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyGigsHandler: error listing gigs", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewGigResponses(gigs), "gigs retrieved successfully")
}

// GetGigBidsHandler handles GET /gigs/:gig_id/bids (gig owner only)
func (h *MarketHandler) GetGigBidsHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	userID := c.GetString("user_id")
	bids, err := h.service.ListBidsForGig(c.Request.Context(), gigID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGigBidsHandler: error listing bids", map[string]any{
			"gig_id":  gigID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// PlaceBidHandler handles POST /bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := c.GetString("user_id")
	bid, err := h.service.PlaceBid(c.Request.Context(), req.GigID, userID, req.Message, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"gig_id":  req.GigID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":  bid.BidID,
		"gig_id":  bid.GigID,
		"user_id": userID,
		"price":   bid.Price,
	})
}

// GetMyBidsHandler handles GET /users/me/bids
func (h *MarketHandler) GetMyBidsHandler(c *gin.Context) {
	userID := c.GetString("user_id")
	bids, err := h.service.ListBidsByFreelancer(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyBidsHandler: error listing bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// HireHandler handles PATCH /bids/:bid_id/hire. On success the response
// carries the fully committed gig and bid; any error means nothing changed.
func (h *MarketHandler) HireHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID := c.GetString("user_id")

	gig, bid, err := h.service.Hire(c.Request.Context(), bidID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("HireHandler: failed to hire", map[string]any{
			"handler": "HireHandler",
			"bid_id":  bidID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.HireResponse{
		Gig: helpers.NewGigResponse(gig),
		Bid: helpers.NewBidResponse(bid),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "freelancer hired successfully")
	helpers.LogSuccess("HireHandler", "freelancer hired successfully", map[string]any{
		"gig_id":        gig.GigID,
		"bid_id":        bid.BidID,
		"owner_id":      userID,
		"freelancer_id": bid.FreelancerID,
	})
}
