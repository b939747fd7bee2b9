package helpers

// Request/Response DTOs
type StartConversationRequest struct {
	ArtworkID string `json:"artwork_id"`
}

type FillFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
