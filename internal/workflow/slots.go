package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/reply"
)

// modifyBidSlots lists the form's slots in collection order
var modifyBidSlots = []slot{
	{
		field:    FieldArtworkID,
		stage:    StageCollectingArtworkID,
		validate: validateArtworkID,
		clear:    func(s *State) { s.ArtworkID = nil },
		prompt:   promptArtworkID,
	},
	{
		field:    FieldBidValue,
		stage:    StageCollectingBidValue,
		validate: validateBidValue,
		clear:    func(s *State) { s.BidValue = nil },
		prompt:   promptBidValue,
	},
	{
		field:    FieldConfirm,
		stage:    StageCollectingConfirmation,
		validate: validateConfirmation,
		clear:    func(s *State) { s.Confirmed = nil },
		prompt:   promptConfirmation,
	},
}

func validateArtworkID(ctx context.Context, f *Form, state *State, raw string) error {
	artwork, err := f.svc.GetArtwork(ctx, raw)
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidFormat):
		return &SlotError{Field: FieldArtworkID, Code: CodeInvalidFormat, Message: reply.InvalidArtworkIDText(raw)}
	case errors.Is(err, biddingerrors.ErrArtworkNotFound):
		return &SlotError{
			Field:   FieldArtworkID,
			Code:    CodeNotFound,
			Message: reply.ArtworkNotFoundText(strings.ToUpper(strings.TrimSpace(raw))),
		}
	case err != nil:
		return err
	}

	id := artwork.ArtworkID
	state.ArtworkID = &id
	return nil
}

// validateBidValue checks the value against the artwork's minimum as it is now. The
// ledger re-checks the minimum when the bid is written.
func validateBidValue(ctx context.Context, f *Form, state *State, raw string) error {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return &SlotError{Field: FieldBidValue, Code: CodeNotAnInteger, Message: reply.NotAnIntegerText(raw)}
	}

	minBid, err := f.svc.GetMinimumBid(ctx, *state.ArtworkID)
	if errors.Is(err, biddingerrors.ErrArtworkNotFound) {
		// the artwork vanished after it was accepted; collect it again
		state.ArtworkID = nil
		return &SlotError{Field: FieldBidValue, Code: CodeNotFound, Message: reply.UnverifiedMinText}
	}
	if err != nil {
		return err
	}

	if value < minBid {
		return &SlotError{Field: FieldBidValue, Code: CodeBelowMinimum, Message: reply.BelowMinimumText(value, minBid)}
	}

	state.BidValue = &value
	return nil
}

func validateConfirmation(_ context.Context, _ *Form, state *State, raw string) error {
	if raw != "yes" && raw != "no" {
		return &SlotError{Field: FieldConfirm, Code: CodeUnrecognizedConfirmation, Message: reply.UnrecognizedText}
	}

	confirmed := raw == "yes"
	state.Confirmed = &confirmed
	return nil
}

func promptArtworkID(ctx context.Context, f *Form, _ State, out *reply.Collector) error {
	bids, err := f.svc.ListBids(ctx, f.activeUser)
	if err != nil {
		return err
	}

	text := "For which artwork do you want to modify the bid value? Please provide the artwork ID code " +
		"(e.g. ABC123 or GAP009)."
	buttons := make([]reply.Button, 0, len(bids))
	for _, b := range bids {
		buttons = append(buttons, reply.Button{Title: b.ArtworkID, Payload: reply.InformPayload(b.ArtworkID)})
	}
	out.Utter(text, buttons...)
	return nil
}

func promptBidValue(ctx context.Context, f *Form, state State, out *reply.Collector) error {
	artwork, err := f.svc.GetArtwork(ctx, *state.ArtworkID)
	if err != nil {
		return err
	}

	bid, ok, err := f.svc.GetBid(ctx, f.activeUser, artwork.ArtworkID)
	if err != nil {
		return err
	}

	if !ok {
		out.Utter(fmt.Sprintf("How many Canadian dollars do you want to bid on artwork %s? The minimum bid is $%d. "+
			"Please use an integer value (e.g. 1000 or 550).", artwork.ArtworkID, artwork.MinBid))
		return nil
	}
	out.Utter(fmt.Sprintf("How many Canadian dollars do you want to bid on artwork %s? The minimum bid is $%d and "+
		"your current bid is $%d. Please use an integer value (e.g. 1000 or 550).",
		artwork.ArtworkID, artwork.MinBid, bid.Value))
	return nil
}

func promptConfirmation(_ context.Context, _ *Form, state State, out *reply.Collector) error {
	out.Utter(
		fmt.Sprintf("Are you sure you want to submit a new bid for artwork %s with value $%d?",
			*state.ArtworkID, *state.BidValue),
		reply.Button{Title: "Yes", Payload: reply.AgreePayload},
		reply.Button{Title: "No", Payload: reply.DisagreePayload},
	)
	return nil
}
