package server

import (
	"github.com/gin-gonic/gin"

	"github.com/brandonecarr/bidwars/internal/events"
	handler "github.com/brandonecarr/bidwars/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	sessionSvc handler.SessionServiceInterface,
	bidSvc handler.BidServiceInterface,
	roundSvc handler.RoundServiceInterface,
	hub *events.Hub,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	sessionHandler := handler.NewSessionHandler(sessionSvc)
	bidHandler := handler.NewBidHandler(bidSvc)
	roundHandler := handler.NewRoundHandler(roundSvc)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", sessionHandler.CreateSessionHandler)
		sessions.POST("/:code/join", sessionHandler.JoinSessionHandler)
		sessions.GET("/:code/state", sessionHandler.StateHandler)
		sessions.GET("/:code/me", sessionHandler.MeHandler)
		sessions.GET("/:code/items", sessionHandler.ListItemsHandler)
		sessions.POST("/:code/items", sessionHandler.AddItemHandler)

		sessions.POST("/:code/bids", bidHandler.PlaceBidHandler)
		sessions.GET("/:code/rounds/:round_id/bids", bidHandler.ListBidsHandler)

		sessions.POST("/:code/rounds", roundHandler.StartRoundHandler)
		sessions.POST("/:code/rounds/:round_id/sold", roundHandler.ResolveSoldHandler)
		sessions.POST("/:code/rounds/:round_id/skip", roundHandler.ResolveSkipHandler)
		sessions.POST("/:code/rounds/:round_id/item", roundHandler.AssignItemHandler)
		sessions.POST("/:code/end", roundHandler.EndSessionHandler)
	}

	if hub != nil {
		wsHandler := handler.NewWSHandler(hub, sessionSvc)
		router.GET("/ws/:code", wsHandler.StreamHandler)
	}

	return router
}
