package server

import (
	"gallery-assistant/internal/assistant"
	"gallery-assistant/internal/workflow"
	handler "gallery-assistant/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(workflowService handler.WorkflowServiceInterface, galleryService handler.GalleryServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(workflowService)
	galleryHandler := handler.NewGalleryHandler(galleryService)

	conversations := router.Group("/conversations")
	{
		conversations.POST("", biddingHandler.StartConversationHandler)
		conversations.GET("/:id", biddingHandler.GetConversationHandler)
		conversations.POST("/:id/fields", biddingHandler.FillFieldHandler)
		conversations.DELETE("/:id", biddingHandler.AbandonConversationHandler)
	}

	artworks := router.Group("/artworks")
	{
		artworks.GET("/:artwork_id", galleryHandler.ArtworkInfoHandler)
		artworks.GET("/:artwork_id/minimum-bid", galleryHandler.MinimumBidHandler)
		artworks.GET("/:artwork_id/bids/count", galleryHandler.BidCountHandler)
	}

	router.GET("/bids", galleryHandler.BidListHandler)
	router.GET("/auction/schedule", galleryHandler.AuctionScheduleHandler)

	return router
}

var (
	_ handler.WorkflowServiceInterface = (*workflow.Manager)(nil)
	_ handler.GalleryServiceInterface  = (*assistant.Assistant)(nil)
)
