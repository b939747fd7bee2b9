package workflow

import (
	"errors"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/reply"
	"gallery-assistant/internal/repository"
)

// Field names a slot of the modify-bid form
type Field string

const (
	FieldArtworkID Field = "artwork_id"
	FieldBidValue  Field = "bid_value"
	FieldConfirm   Field = "confirm_form"
)

// Stage is the slot currently being collected
type Stage string

const (
	StageCollectingArtworkID    Stage = "collecting_artwork_id"
	StageCollectingBidValue     Stage = "collecting_bid_value"
	StageCollectingConfirmation Stage = "collecting_confirmation"
)

// Terminal marks the end of a form run
type Terminal string

const (
	TerminalCommitted Terminal = "committed"
	TerminalCancelled Terminal = "cancelled"
)

// ErrorCode classifies a rejected slot value
type ErrorCode string

const (
	CodeInvalidFormat            ErrorCode = "invalid_format"
	CodeNotFound                 ErrorCode = "not_found"
	CodeNotAnInteger             ErrorCode = "not_an_integer"
	CodeBelowMinimum             ErrorCode = "below_minimum"
	CodeUnrecognizedConfirmation ErrorCode = "unrecognized_confirmation"
	CodeMissingEntity            ErrorCode = "missing_entity"
)

var codeErrors = map[ErrorCode]error{
	CodeInvalidFormat:            biddingerrors.ErrInvalidFormat,
	CodeNotFound:                 biddingerrors.ErrArtworkNotFound,
	CodeNotAnInteger:             biddingerrors.ErrNotAnInteger,
	CodeBelowMinimum:             biddingerrors.ErrBelowMinimum,
	CodeUnrecognizedConfirmation: biddingerrors.ErrUnrecognizedConfirmation,
	CodeMissingEntity:            biddingerrors.ErrMissingEntity,
}

// SlotError is a recoverable, user-facing validation failure
type SlotError struct {
	Field   Field     `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *SlotError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Unwrap exposes the matching biddingerrors sentinel
func (e *SlotError) Unwrap() error {
	return codeErrors[e.Code]
}

func asSlotError(err error) (*SlotError, bool) {
	var se *SlotError
	ok := errors.As(err, &se)
	return se, ok
}

// State holds the in-progress values of one conversation's form
type State struct {
	ArtworkID *string    `json:"artwork_id"`
	BidValue  *int64     `json:"bid_value"`
	Confirmed *bool      `json:"confirmed"`
	LastError *SlotError `json:"last_error,omitempty"`
}

// Reset empties every field
func (s *State) Reset() {
	*s = State{}
}

// Stage returns the first slot that still needs a value
func (s State) Stage() Stage {
	switch {
	case s.ArtworkID == nil:
		return StageCollectingArtworkID
	case s.BidValue == nil:
		return StageCollectingBidValue
	default:
		return StageCollectingConfirmation
	}
}

// TurnResult is what one field update hands back to the dialogue manager
type TurnResult struct {
	ConversationID string              `json:"conversation_id,omitempty"`
	Field          Field               `json:"field,omitempty"`
	Value          any                 `json:"value"`
	Reset          bool                `json:"reset"`
	Error          *SlotError          `json:"error,omitempty"`
	Outcome        *repository.Outcome `json:"outcome,omitempty"`
	Terminal       Terminal            `json:"terminal,omitempty"`
	Stage          Stage               `json:"stage"`
	State          State               `json:"state"`
	Messages       []reply.Display     `json:"messages"`
}
