package server

import (
	market "gig-market/internal/marketService"
	"gig-market/internal/notify"
	handler "gig-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService *market.MarketService, hub *notify.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService)
	wsHandler := notify.NewHandler(hub)

	gigs := router.Group("/gigs")
	{
		gigs.GET("", marketHandler.GetGigsHandler)
		gigs.GET("/:gig_id", marketHandler.GetGigByIDHandler)
		gigs.POST("", IdentityMiddleware, marketHandler.CreateGigHandler)
		gigs.GET("/:gig_id/bids", IdentityMiddleware, marketHandler.GetGigBidsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", IdentityMiddleware, marketHandler.PlaceBidHandler)
		bids.PATCH("/:bid_id/hire", IdentityMiddleware, marketHandler.HireHandler)
	}

	me := router.Group("/users/me", IdentityMiddleware)
	{
		me.GET("/gigs", marketHandler.GetMyGigsHandler)
		me.GET("/bids", marketHandler.GetMyBidsHandler)
	}

	router.GET("/ws", IdentityMiddleware, wsHandler.ServeWS)

	return router
}
