package workflow

import (
	"context"
	"errors"
	"testing"

	bidding "gallery-assistant/internal/biddingService"
	"gallery-assistant/internal/biddingerrors"
	model "gallery-assistant/internal/models"
	"gallery-assistant/internal/reply"
	"gallery-assistant/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const activeUser = "Foo"

var (
	cloud = model.Artwork{ArtworkID: "ABC123", Title: "Cloud", ArtistName: "Alice Allen",
		Medium: "Coloured ink on paper", Category: "painting", MinBid: 1000}
	river = model.Artwork{ArtworkID: "DEF871", Title: "River", ArtistName: "Alice Allen",
		Medium: "Coloured ink on paper", Category: "painting", MinBid: 500}
)

// newTestForm builds a form over an isolated in-memory store seeded with Foo, ABC123 and DEF871
func newTestForm(t *testing.T) (*Form, *repository.MemoryRepo) {
	t.Helper()
	ctx := context.Background()

	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.AddUser(ctx, model.User{UserName: activeUser}))
	require.NoError(t, repo.AddArtwork(ctx, cloud))
	require.NoError(t, repo.AddArtwork(ctx, river))

	return NewForm(bidding.NewBiddingService(repo), activeUser), repo
}

func fill(t *testing.T, f *Form, state *State, field Field, raw string) TurnResult {
	t.Helper()
	res, err := f.Fill(context.Background(), state, field, raw)
	require.NoError(t, err)
	return res
}

func TestForm_CreateBid(t *testing.T) {
	t.Parallel()
	f, repo := newTestForm(t)
	ctx := context.Background()
	var state State

	res := fill(t, f, &state, FieldArtworkID, "abc123")
	require.Equal(t, "ABC123", res.Value)
	require.False(t, res.Reset)
	require.Nil(t, res.Error)
	require.Equal(t, StageCollectingBidValue, res.Stage)
	require.Len(t, res.Messages, 1)
	require.Equal(t, "How many Canadian dollars do you want to bid on artwork ABC123? The minimum bid is $1000. "+
		"Please use an integer value (e.g. 1000 or 550).", res.Messages[0].Text)

	res = fill(t, f, &state, FieldBidValue, "1100")
	require.Equal(t, int64(1100), res.Value)
	require.Equal(t, StageCollectingConfirmation, res.Stage)
	require.Equal(t, "Are you sure you want to submit a new bid for artwork ABC123 with value $1100?", res.Messages[0].Text)
	require.Equal(t, []reply.Button{
		{Title: "Yes", Payload: reply.AgreePayload},
		{Title: "No", Payload: reply.DisagreePayload},
	}, res.Messages[0].Buttons)

	res = fill(t, f, &state, FieldConfirm, "yes")
	require.Equal(t, TerminalCommitted, res.Terminal)
	require.NotNil(t, res.Outcome)
	require.Equal(t, repository.Created(1100), *res.Outcome)
	require.Nil(t, res.Error)
	require.Equal(t, StageCollectingArtworkID, res.Stage)
	require.Equal(t, State{}, res.State)
	require.Equal(t, State{}, state)
	require.Equal(t, "Ok Foo, your bid for artwork ABC123 with value 1100 was successfully created.", res.Messages[0].Text)

	bids, err := repo.ListBids(ctx, activeUser)
	require.NoError(t, err)
	require.Contains(t, bids, model.BidEntry{ArtworkID: "ABC123", Value: 1100})
}

func TestForm_UpdateBid(t *testing.T) {
	t.Parallel()
	f, repo := newTestForm(t)
	ctx := context.Background()
	_, err := repo.UpsertBid(ctx, activeUser, "ABC123", 1100, true)
	require.NoError(t, err)

	var state State
	res := fill(t, f, &state, FieldArtworkID, "ABC123")
	require.Contains(t, res.Messages[0].Text, "The minimum bid is $1000 and your current bid is $1100.")

	fill(t, f, &state, FieldBidValue, "1100")
	res = fill(t, f, &state, FieldConfirm, "yes")
	require.Equal(t, repository.Updated(1100, 1100), *res.Outcome)
	require.Equal(t, "Ok Foo, your bid for artwork ABC123 was successfully updated with the new value 1100.", res.Messages[0].Text)
}

func TestForm_BelowMinimumDuringCollection(t *testing.T) {
	t.Parallel()
	f, repo := newTestForm(t)
	ctx := context.Background()
	_, err := repo.UpsertBid(ctx, activeUser, "ABC123", 1100, true)
	require.NoError(t, err)

	var state State
	fill(t, f, &state, FieldArtworkID, "abc123")

	res := fill(t, f, &state, FieldBidValue, "700")
	require.True(t, res.Reset)
	require.Nil(t, res.Value)
	require.NotNil(t, res.Error)
	require.Equal(t, CodeBelowMinimum, res.Error.Code)
	require.ErrorIs(t, res.Error, biddingerrors.ErrBelowMinimum)
	require.Equal(t, StageCollectingBidValue, res.Stage)
	require.Nil(t, state.BidValue)
	require.Equal(t, "ABC123", *state.ArtworkID, "earlier slots are kept")
	require.Len(t, res.Messages, 2)
	require.Equal(t, "Sorry, 700 is less than the minimum bid amount of 1000.", res.Messages[0].Text)
	require.Contains(t, res.Messages[1].Text, "How many Canadian dollars do you want to bid on artwork ABC123?")

	bid, ok, err := repo.GetBid(ctx, activeUser, "ABC123")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1100), bid.Value)
}

// A rejected bid value never reaches the ledger
func TestForm_BelowMinimumMakesNoLedgerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBidService(ctrl)
	f := NewForm(svc, activeUser)
	ctx := context.Background()
	id := "ABC123"
	state := State{ArtworkID: &id}

	svc.EXPECT().GetMinimumBid(ctx, "ABC123").Return(int64(1000), nil)
	svc.EXPECT().GetArtwork(ctx, "ABC123").Return(cloud, nil)
	svc.EXPECT().GetBid(ctx, activeUser, "ABC123").Return(model.Bid{UserName: activeUser, ArtworkID: "ABC123", Value: 1100}, true, nil)

	res, err := f.Fill(ctx, &state, FieldBidValue, "700")
	require.NoError(t, err)
	require.Equal(t, CodeBelowMinimum, res.Error.Code)
}

func TestForm_Cancel(t *testing.T) {
	t.Parallel()
	f, repo := newTestForm(t)
	ctx := context.Background()

	var state State
	fill(t, f, &state, FieldArtworkID, "DEF871")
	fill(t, f, &state, FieldBidValue, "600")

	res := fill(t, f, &state, FieldConfirm, "no")
	require.Equal(t, TerminalCancelled, res.Terminal)
	require.Nil(t, res.Outcome)
	require.Equal(t, "no", res.Value)
	require.Equal(t, []reply.Display{{Text: reply.CancelledText}}, res.Messages)
	require.Equal(t, State{}, state)
	require.Equal(t, StageCollectingArtworkID, res.Stage)

	bids, err := repo.ListBids(ctx, activeUser)
	require.NoError(t, err)
	require.Empty(t, bids)
}

func TestForm_SlotRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefill  []string // values accepted before the rejected one, in slot order
		field    Field
		raw      string
		wantCode ErrorCode
		wantText string
		wantErr  error
	}{
		{name: "artwork_bad_format", field: FieldArtworkID, raw: "AB123", wantCode: CodeInvalidFormat,
			wantText: "Sorry, AB123 is not a valid artwork ID code.", wantErr: biddingerrors.ErrInvalidFormat},
		{name: "artwork_too_long", field: FieldArtworkID, raw: "ABCD123", wantCode: CodeInvalidFormat,
			wantText: "Sorry, ABCD123 is not a valid artwork ID code.", wantErr: biddingerrors.ErrInvalidFormat},
		{name: "artwork_not_found", field: FieldArtworkID, raw: "zzz999", wantCode: CodeNotFound,
			wantText: "Sorry, no artwork with ID code ZZZ999 exists.", wantErr: biddingerrors.ErrArtworkNotFound},
		{name: "bid_not_integer", prefill: []string{"ABC123"}, field: FieldBidValue, raw: "a lot", wantCode: CodeNotAnInteger,
			wantText: "Sorry, a lot is not a valid bid amount.", wantErr: biddingerrors.ErrNotAnInteger},
		{name: "bid_decimal", prefill: []string{"ABC123"}, field: FieldBidValue, raw: "1100.50", wantCode: CodeNotAnInteger,
			wantText: "Sorry, 1100.50 is not a valid bid amount.", wantErr: biddingerrors.ErrNotAnInteger},
		{name: "bid_negative", prefill: []string{"DEF871"}, field: FieldBidValue, raw: "-5", wantCode: CodeBelowMinimum,
			wantText: "Sorry, -5 is less than the minimum bid amount of 500.", wantErr: biddingerrors.ErrBelowMinimum},
		{name: "confirm_capitalized", prefill: []string{"ABC123", "1000"}, field: FieldConfirm, raw: "Yes",
			wantCode: CodeUnrecognizedConfirmation, wantText: reply.UnrecognizedText, wantErr: biddingerrors.ErrUnrecognizedConfirmation},
		{name: "confirm_maybe", prefill: []string{"ABC123", "1000"}, field: FieldConfirm, raw: "maybe",
			wantCode: CodeUnrecognizedConfirmation, wantText: reply.UnrecognizedText, wantErr: biddingerrors.ErrUnrecognizedConfirmation},
	}

	fields := []Field{FieldArtworkID, FieldBidValue, FieldConfirm}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, _ := newTestForm(t)

			var state State
			for i, v := range tc.prefill {
				fill(t, f, &state, fields[i], v)
			}
			before := state

			res := fill(t, f, &state, tc.field, tc.raw)
			require.True(t, res.Reset)
			require.Equal(t, tc.field, res.Field)
			require.NotNil(t, res.Error)
			require.Equal(t, tc.wantCode, res.Error.Code)
			require.ErrorIs(t, res.Error, tc.wantErr)
			require.Equal(t, tc.wantText, res.Messages[0].Text)
			require.Len(t, res.Messages, 2, "the same prompt is reissued")
			require.Equal(t, before.Stage(), res.Stage)
			require.Equal(t, tc.wantCode, state.LastError.Code)

			// a valid value afterwards clears the error context
			if tc.field == FieldArtworkID {
				res = fill(t, f, &state, FieldArtworkID, "ABC123")
				require.Nil(t, res.Error)
				require.Nil(t, state.LastError)
			}
		})
	}
}

func TestForm_FieldOrder(t *testing.T) {
	t.Parallel()
	f, _ := newTestForm(t)
	ctx := context.Background()

	var state State
	_, err := f.Fill(ctx, &state, FieldBidValue, "1100")
	require.ErrorIs(t, err, biddingerrors.ErrUnexpectedField)
	require.Equal(t, State{}, state)

	_, err = f.Fill(ctx, &state, Field("payment"), "visa")
	require.ErrorIs(t, err, biddingerrors.ErrUnknownField)

	fill(t, f, &state, FieldArtworkID, "ABC123")
	_, err = f.Fill(ctx, &state, FieldArtworkID, "DEF871")
	require.ErrorIs(t, err, biddingerrors.ErrUnexpectedField, "no backward navigation")
	require.Equal(t, "ABC123", *state.ArtworkID)
}

// The minimum is checked again when the bid is written; a raise after collection wins.
func TestForm_CommitTimeMinimumWins(t *testing.T) {
	t.Parallel()
	f, repo := newTestForm(t)
	ctx := context.Background()

	var state State
	fill(t, f, &state, FieldArtworkID, "ABC123")
	fill(t, f, &state, FieldBidValue, "1100")

	raised := cloud
	raised.MinBid = 2000
	require.NoError(t, repo.AddArtwork(ctx, raised))

	res := fill(t, f, &state, FieldConfirm, "yes")
	require.Equal(t, TerminalCommitted, res.Terminal)
	require.Equal(t, repository.RejectedBelowMinimum(2000), *res.Outcome)
	require.Equal(t, CodeBelowMinimum, res.Error.Code)
	require.Equal(t, "Sorry Foo, I could not save your bid with value 1100 since the minimum bid for artwork ABC123 is 2000.",
		res.Messages[0].Text)
	require.Equal(t, State{}, state)

	_, ok, err := repo.GetBid(ctx, activeUser, "ABC123")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestForm_MissingEntityAtCommit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// the active user is not registered in the store
	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.AddArtwork(ctx, cloud))
	f := NewForm(bidding.NewBiddingService(repo), "Ghost")

	var state State
	fill(t, f, &state, FieldArtworkID, "ABC123")
	fill(t, f, &state, FieldBidValue, "1500")
	res := fill(t, f, &state, FieldConfirm, "yes")

	require.Equal(t, repository.RejectedMissingEntity(), *res.Outcome)
	require.Equal(t, CodeMissingEntity, res.Error.Code)
	require.ErrorIs(t, res.Error, biddingerrors.ErrMissingEntity)
	require.Equal(t, "An error occurred: either the user Ghost or the artwork ABC123 does not exist.", res.Messages[0].Text)
	require.Equal(t, State{}, state)
}

func TestForm_StoreFailureAtCommitResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBidService(ctrl)
	f := NewForm(svc, activeUser)
	ctx := context.Background()

	id, value := "ABC123", int64(1100)
	state := State{ArtworkID: &id, BidValue: &value}

	svc.EXPECT().ModifyBid(ctx, activeUser, "ABC123", int64(1100), true).Return(repository.Outcome{}, errors.New("database is locked"))

	_, err := f.Fill(ctx, &state, FieldConfirm, "yes")
	require.Error(t, err)
	require.Equal(t, State{}, state)
}

func TestForm_StoreFailureDuringValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBidService(ctrl)
	f := NewForm(svc, activeUser)
	ctx := context.Background()

	svc.EXPECT().GetArtwork(ctx, "ABC123").Return(model.Artwork{}, errors.New("disk I/O error"))

	var state State
	_, err := f.Fill(ctx, &state, FieldArtworkID, "ABC123")
	require.Error(t, err)
	require.NotErrorIs(t, err, biddingerrors.ErrArtworkNotFound)
	require.Nil(t, state.ArtworkID)
}

func TestForm_ArtworkPromptOffersExistingBids(t *testing.T) {
	t.Parallel()
	f, repo := newTestForm(t)
	ctx := context.Background()

	out := &reply.Collector{}
	require.NoError(t, f.Prompt(ctx, State{}, out))
	require.Empty(t, out.Messages()[0].Buttons)

	_, err := repo.UpsertBid(ctx, activeUser, "DEF871", 600, true)
	require.NoError(t, err)
	_, err = repo.UpsertBid(ctx, activeUser, "ABC123", 1100, true)
	require.NoError(t, err)

	out = &reply.Collector{}
	require.NoError(t, f.Prompt(ctx, State{}, out))
	msg := out.Messages()[0]
	require.Equal(t, "For which artwork do you want to modify the bid value? Please provide the artwork ID code "+
		"(e.g. ABC123 or GAP009).", msg.Text)
	require.Equal(t, []reply.Button{
		{Title: "DEF871", Payload: `/inform{"artwork_id": "DEF871"}`},
		{Title: "ABC123", Payload: `/inform{"artwork_id": "ABC123"}`},
	}, msg.Buttons)
}

func TestState_Stage(t *testing.T) {
	id, value, yes := "ABC123", int64(1), true

	require.Equal(t, StageCollectingArtworkID, State{}.Stage())
	require.Equal(t, StageCollectingBidValue, State{ArtworkID: &id}.Stage())
	require.Equal(t, StageCollectingConfirmation, State{ArtworkID: &id, BidValue: &value}.Stage())

	s := State{ArtworkID: &id, BidValue: &value, Confirmed: &yes, LastError: &SlotError{}}
	s.Reset()
	require.Equal(t, State{}, s)
}
