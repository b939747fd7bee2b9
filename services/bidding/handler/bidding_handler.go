package handler

import (
	"context"
	"fmt"
	"net/http"

	"gallery-assistant/internal/workflow"
	"gallery-assistant/services/bidding/helpers"
	"gallery-assistant/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type WorkflowServiceInterface interface {
	Start(ctx context.Context, artworkID string) (workflow.TurnResult, error)
	Get(ctx context.Context, id string) (workflow.TurnResult, error)
	Fill(ctx context.Context, id string, field workflow.Field, raw string) (workflow.TurnResult, error)
	Abandon(ctx context.Context, id string) error
}

type BiddingHandler struct {
	service WorkflowServiceInterface
}

func NewBiddingHandler(service WorkflowServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// StartConversationHandler handles POST /conversations
func (h *BiddingHandler) StartConversationHandler(c *gin.Context) {
	var req helpers.StartConversationRequest
	// an empty body starts a blank form
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "StartConversationHandler", err)
			return
		}
	}

	res, err := h.service.Start(c.Request.Context(), req.ArtworkID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartConversationHandler: failed to start conversation", map[string]any{
			"handler":    "StartConversationHandler",
			"artwork_id": req.ArtworkID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, res, "conversation started")
	helpers.LogSuccess("StartConversationHandler", "conversation started", map[string]any{
		"conversation_id": res.ConversationID,
		"stage":           res.Stage,
	})
}

// GetConversationHandler handles GET /conversations/:id
func (h *BiddingHandler) GetConversationHandler(c *gin.Context) {
	id := c.Param("id")
	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetConversationHandler: error retrieving conversation", map[string]any{"conversation_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, res, "conversation retrieved successfully")
}

// FillFieldHandler handles POST /conversations/:id/fields
func (h *BiddingHandler) FillFieldHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.FillFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FillFieldHandler", err)
		return
	}

	value := helpers.SlotValue(req.Field, req.Value)
	res, err := h.service.Fill(c.Request.Context(), id, workflow.Field(req.Field), value)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("FillFieldHandler: field update refused", map[string]any{
			"conversation_id": id,
			"field":           req.Field,
			"error":           err.Error(),
		})
		return
	}

	message := "field accepted"
	switch {
	case res.Error != nil:
		message = "field rejected"
	case res.Terminal != "":
		message = "form " + string(res.Terminal)
	}

	utils.JSONResponse(c, http.StatusOK, res, message)
	helpers.LogSuccess("FillFieldHandler", message, map[string]any{
		"conversation_id": id,
		"field":           req.Field,
		"stage":           res.Stage,
	})
}

// AbandonConversationHandler handles DELETE /conversations/:id
func (h *BiddingHandler) AbandonConversationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Abandon(c.Request.Context(), id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AbandonConversationHandler: error abandoning conversation", map[string]any{"conversation_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"conversation_id": id}, "conversation abandoned")
}
