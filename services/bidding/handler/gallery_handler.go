package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/reply"
	"gallery-assistant/services/bidding/helpers"
	"gallery-assistant/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=gallery_handler.go -destination=mock_gallery_handler.go -package=handler

type GalleryServiceInterface interface {
	AuctionSchedule() reply.Display
	BidList(ctx context.Context) (reply.Display, error)
	BidCount(ctx context.Context, rawID string) (reply.Display, error)
	InfoCard(ctx context.Context, rawID string) (reply.Display, error)
	MinimumBid(ctx context.Context, rawID string) (reply.Display, error)
}

type GalleryHandler struct {
	service GalleryServiceInterface
}

func NewGalleryHandler(service GalleryServiceInterface) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// AuctionScheduleHandler handles GET /auction/schedule
func (h *GalleryHandler) AuctionScheduleHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.AuctionSchedule(), "auction schedule retrieved successfully")
}

// BidListHandler handles GET /bids
func (h *GalleryHandler) BidListHandler(c *gin.Context) {
	display, err := h.service.BidList(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidListHandler: error retrieving bids", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, display, "bids retrieved successfully")
	helpers.LogSuccess("BidListHandler", "bids retrieved successfully", map[string]any{"buttons": len(display.Buttons)})
}

// ArtworkInfoHandler handles GET /artworks/:artwork_id
func (h *GalleryHandler) ArtworkInfoHandler(c *gin.Context) {
	h.artworkLookup(c, "ArtworkInfoHandler", "artwork retrieved successfully", h.service.InfoCard)
}

// MinimumBidHandler handles GET /artworks/:artwork_id/minimum-bid
func (h *GalleryHandler) MinimumBidHandler(c *gin.Context) {
	h.artworkLookup(c, "MinimumBidHandler", "minimum bid retrieved successfully", h.service.MinimumBid)
}

// BidCountHandler handles GET /artworks/:artwork_id/bids/count
func (h *GalleryHandler) BidCountHandler(c *gin.Context) {
	h.artworkLookup(c, "BidCountHandler", "bid count retrieved successfully", h.service.BidCount)
}

// artworkLookup runs an artwork question. Invalid and unknown ids still carry the
// assistant's reply in data so the chat can show it.
func (h *GalleryHandler) artworkLookup(c *gin.Context, handlerName, okMessage string,
	lookup func(ctx context.Context, rawID string) (reply.Display, error)) {
	artworkID := c.Param("artwork_id")
	display, err := lookup(c.Request.Context(), artworkID)
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidFormat), errors.Is(err, biddingerrors.ErrArtworkNotFound):
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONResponse(c, status, display, message)
		utils.Info(handlerName+": "+message, map[string]any{"artwork_id": artworkID})
		return
	case err != nil:
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error(handlerName+": lookup failed", map[string]any{"artwork_id": artworkID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, display, okMessage)
	helpers.LogSuccess(handlerName, okMessage, map[string]any{"artwork_id": artworkID})
}
