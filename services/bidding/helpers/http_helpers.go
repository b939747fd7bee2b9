package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/reply"
	"gallery-assistant/internal/workflow"
	"gallery-assistant/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidFormat):
		return http.StatusBadRequest, "invalid artwork id"
	case errors.Is(err, biddingerrors.ErrArtworkNotFound):
		return http.StatusNotFound, "artwork not found"
	case errors.Is(err, biddingerrors.ErrSessionNotFound):
		return http.StatusNotFound, "conversation not found"
	case errors.Is(err, biddingerrors.ErrUnknownField):
		return http.StatusBadRequest, "unknown form field"
	case errors.Is(err, biddingerrors.ErrUnexpectedField):
		return http.StatusConflict, "field is not the one being collected"
	case errors.Is(err, biddingerrors.ErrEmptyUser):
		return http.StatusBadRequest, "no active user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// SlotValue turns a quick-reply payload into the raw value the form expects.
// The confirm buttons send /agree and /disagree; everything else passes through.
func SlotValue(field, value string) string {
	if workflow.Field(field) != workflow.FieldConfirm {
		return value
	}
	switch value {
	case reply.AgreePayload:
		return "yes"
	case reply.DisagreePayload:
		return "no"
	default:
		return value
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
