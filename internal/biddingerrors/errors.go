package biddingerrors

import "errors"

// Slot validation errors
var (
	ErrInvalidFormat            = errors.New("invalid artwork id format")
	ErrArtworkNotFound          = errors.New("artwork not found")
	ErrNotAnInteger             = errors.New("bid value is not an integer")
	ErrBelowMinimum             = errors.New("bid value below minimum bid")
	ErrUnrecognizedConfirmation = errors.New("unrecognized confirmation")
)

// Commit errors
var (
	ErrMissingEntity  = errors.New("user or artwork does not exist")
	ErrNoExistingBid  = errors.New("no existing bid")
	ErrBidUnavailable = errors.New("cannot verify minimum bid amount")
)

// Conversation errors
var (
	ErrSessionNotFound = errors.New("conversation not found")
	ErrUnknownField    = errors.New("unknown form field")
	ErrUnexpectedField = errors.New("field is not the one being collected")
	ErrEmptyUser       = errors.New("empty user name")
)
