// Package workflow implements the modify-bid form: an ordered list of slots, each with
// a validator and a prompt, driven field by field by one interpreter.
package workflow

import (
	"context"
	"fmt"

	bidding "gallery-assistant/internal/biddingService"
	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/models"
	"gallery-assistant/internal/reply"
	"gallery-assistant/internal/repository"
	"gallery-assistant/utils"
)

//go:generate mockgen -source=form.go -destination=mock_form.go -package=workflow

// BidService is the catalog and ledger surface the form depends on
type BidService interface {
	GetArtwork(ctx context.Context, rawID string) (models.Artwork, error)
	GetMinimumBid(ctx context.Context, artworkID string) (int64, error)
	GetBid(ctx context.Context, userName, artworkID string) (models.Bid, bool, error)
	ListBids(ctx context.Context, userName string) ([]models.BidEntry, error)
	ModifyBid(ctx context.Context, userName, artworkID string, value int64, createIfMissing bool) (repository.Outcome, error)
}

var _ BidService = (*bidding.BiddingService)(nil)

// slot binds a field to its stage, validator and prompt. validate stores the accepted
// value in state and returns a *SlotError for a rejected value; any other error is a
// store failure.
type slot struct {
	field    Field
	stage    Stage
	validate func(ctx context.Context, f *Form, state *State, raw string) error
	clear    func(state *State)
	prompt   func(ctx context.Context, f *Form, state State, out *reply.Collector) error
}

// Form runs the modify-bid workflow on behalf of one active user
type Form struct {
	svc        BidService
	activeUser string
	slots      []slot
}

// NewForm creates the modify-bid form for activeUser
func NewForm(svc BidService, activeUser string) *Form {
	return &Form{
		svc:        svc,
		activeUser: activeUser,
		slots:      modifyBidSlots,
	}
}

// ActiveUser returns the user bids are placed for
func (f *Form) ActiveUser() string {
	return f.activeUser
}

func (f *Form) slotFor(stage Stage) slot {
	for _, s := range f.slots {
		if s.stage == stage {
			return s
		}
	}
	return f.slots[0]
}

// Prompt emits the question for the slot currently being collected
func (f *Form) Prompt(ctx context.Context, state State, out *reply.Collector) error {
	return f.slotFor(state.Stage()).prompt(ctx, f, state, out)
}

// Fill validates one field update. Only the slot currently being collected accepts a
// value; a rejected value clears that slot and re-issues its prompt. Once every slot
// holds a value the form submits and resets.
func (f *Form) Fill(ctx context.Context, state *State, field Field, raw string) (TurnResult, error) {
	idx := -1
	for i, s := range f.slots {
		if s.field == field {
			idx = i
			break
		}
	}
	if idx < 0 {
		return TurnResult{}, fmt.Errorf("workflow: %w - %q", biddingerrors.ErrUnknownField, field)
	}

	current := state.Stage()
	if f.slots[idx].stage != current {
		return TurnResult{}, fmt.Errorf("workflow: %w - got %s while %s", biddingerrors.ErrUnexpectedField, field, current)
	}

	s := f.slots[idx]
	out := &reply.Collector{}
	res := TurnResult{Field: field}

	if err := s.validate(ctx, f, state, raw); err != nil {
		se, ok := asSlotError(err)
		if !ok {
			s.clear(state)
			return TurnResult{}, fmt.Errorf("workflow: validate %s: %w", field, err)
		}

		s.clear(state)
		state.LastError = se
		utils.Warn("slot value rejected", map[string]any{
			"user_name": f.activeUser,
			"field":     string(field),
			"code":      string(se.Code),
			"raw":       raw,
		})

		out.Utter(se.Message)
		if err := f.Prompt(ctx, *state, out); err != nil {
			return TurnResult{}, fmt.Errorf("workflow: prompt %s: %w", state.Stage(), err)
		}

		res.Reset = true
		res.Error = se
		return f.finish(res, *state, out), nil
	}

	state.LastError = nil
	res.Value = fieldValue(*state, field)

	if idx < len(f.slots)-1 {
		if err := f.Prompt(ctx, *state, out); err != nil {
			return TurnResult{}, fmt.Errorf("workflow: prompt %s: %w", state.Stage(), err)
		}
		return f.finish(res, *state, out), nil
	}

	if err := f.submit(ctx, state, &res, out); err != nil {
		return TurnResult{}, err
	}
	return f.finish(res, *state, out), nil
}

// submit commits or cancels the collected bid and always resets the form
func (f *Form) submit(ctx context.Context, state *State, res *TurnResult, out *reply.Collector) error {
	defer state.Reset()

	if !*state.Confirmed {
		res.Terminal = TerminalCancelled
		out.Utter(reply.CancelledText)
		utils.Info("bid modification cancelled", map[string]any{
			"user_name":  f.activeUser,
			"artwork_id": *state.ArtworkID,
		})
		return nil
	}

	artworkID, value := *state.ArtworkID, *state.BidValue
	outcome, err := f.svc.ModifyBid(ctx, f.activeUser, artworkID, value, true)
	if err != nil {
		return fmt.Errorf("workflow: submit bid: %w", err)
	}

	res.Terminal = TerminalCommitted
	res.Outcome = &outcome
	text := reply.OutcomeText(f.activeUser, artworkID, value, outcome)
	switch outcome.Kind {
	case repository.OutcomeRejectedMissingEntity, repository.OutcomeRejectedNoExistingBid:
		res.Error = &SlotError{Field: FieldConfirm, Code: CodeMissingEntity, Message: text}
	case repository.OutcomeRejectedBelowMinimum:
		res.Error = &SlotError{Field: FieldBidValue, Code: CodeBelowMinimum, Message: text}
	}
	out.Utter(text)
	return nil
}

func (f *Form) finish(res TurnResult, state State, out *reply.Collector) TurnResult {
	res.Stage = state.Stage()
	res.State = state
	res.Messages = out.Messages()
	return res
}

func fieldValue(state State, field Field) any {
	switch field {
	case FieldArtworkID:
		return *state.ArtworkID
	case FieldBidValue:
		return *state.BidValue
	default:
		if *state.Confirmed {
			return "yes"
		}
		return "no"
	}
}
