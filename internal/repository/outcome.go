package repository

import (
	"fmt"

	"gallery-assistant/internal/biddingerrors"
)

// OutcomeKind tags the result of an upsert
type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota + 1
	OutcomeUpdated
	OutcomeRejectedBelowMinimum
	OutcomeRejectedMissingEntity
	OutcomeRejectedNoExistingBid
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeCreated:               "created",
	OutcomeUpdated:               "updated",
	OutcomeRejectedBelowMinimum:  "rejected_below_minimum",
	OutcomeRejectedMissingEntity: "rejected_missing_entity",
	OutcomeRejectedNoExistingBid: "rejected_no_existing_bid",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// MarshalText renders the kind by name in JSON payloads
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the closed set of results returned by UpsertBid. Business-rule
// rejections are reported here rather than as errors.
type Outcome struct {
	Kind     OutcomeKind `json:"kind"`
	OldValue int64       `json:"old_value,omitempty"`
	NewValue int64       `json:"new_value,omitempty"`
	MinBid   int64       `json:"min_bid,omitempty"`
}

func Created(value int64) Outcome {
	return Outcome{Kind: OutcomeCreated, NewValue: value}
}

func Updated(oldValue, newValue int64) Outcome {
	return Outcome{Kind: OutcomeUpdated, OldValue: oldValue, NewValue: newValue}
}

func RejectedBelowMinimum(minBid int64) Outcome {
	return Outcome{Kind: OutcomeRejectedBelowMinimum, MinBid: minBid}
}

func RejectedMissingEntity() Outcome {
	return Outcome{Kind: OutcomeRejectedMissingEntity}
}

func RejectedNoExistingBid() Outcome {
	return Outcome{Kind: OutcomeRejectedNoExistingBid}
}

// Committed reports whether the outcome persisted a bid value
func (o Outcome) Committed() bool {
	return o.Kind == OutcomeCreated || o.Kind == OutcomeUpdated
}

// Err returns the sentinel matching a rejected outcome, or nil when the bid was committed
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeRejectedBelowMinimum:
		return fmt.Errorf("%w: minimum bid is %d", biddingerrors.ErrBelowMinimum, o.MinBid)
	case OutcomeRejectedMissingEntity:
		return biddingerrors.ErrMissingEntity
	case OutcomeRejectedNoExistingBid:
		return biddingerrors.ErrNoExistingBid
	default:
		return nil
	}
}
