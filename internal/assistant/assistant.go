// Package assistant answers the read-only gallery questions: auction schedule,
// the active user's bids, and artwork details.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bidding "gallery-assistant/internal/biddingService"
	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/models"
	"gallery-assistant/internal/reply"
)

// GalleryService is the catalog and ledger surface the assistant reads
type GalleryService interface {
	GetArtwork(ctx context.Context, rawID string) (models.Artwork, error)
	GetBid(ctx context.Context, userName, artworkID string) (models.Bid, bool, error)
	ListBids(ctx context.Context, userName string) ([]models.BidEntry, error)
	CountBids(ctx context.Context, artworkID string) (int, error)
}

// Schedule describes when auctions take place
type Schedule struct {
	LeadDays int
	Location *time.Location
}

// Assistant answers questions on behalf of the active user
type Assistant struct {
	svc        GalleryService
	activeUser string
	schedule   Schedule
	now        func() time.Time
}

// New creates an Assistant. A nil Location in schedule means UTC.
func New(svc GalleryService, activeUser string, schedule Schedule) *Assistant {
	if schedule.Location == nil {
		schedule.Location = time.UTC
	}
	return &Assistant{
		svc:        svc,
		activeUser: activeUser,
		schedule:   schedule,
		now:        time.Now,
	}
}

// AuctionSchedule announces the next auction date
func (a *Assistant) AuctionSchedule() reply.Display {
	next := a.now().In(a.schedule.Location).AddDate(0, 0, a.schedule.LeadDays)
	return reply.Display{Text: fmt.Sprintf("The next auction is on %s at 8:00 PM (EST). "+
		"The bidding closes at 3:00 PM on the same day.", next.Format("Monday, 02 Jan 2006"))}
}

// BidList lists the active user's bids, one info-card button per bid
func (a *Assistant) BidList(ctx context.Context) (reply.Display, error) {
	bids, err := a.svc.ListBids(ctx, a.activeUser)
	if err != nil {
		return reply.Display{}, fmt.Errorf("assistant: %w", err)
	}

	switch len(bids) {
	case 0:
		return reply.Display{Text: "You have not submitted any bids yet for the current auction."}, nil
	case 1:
		return reply.Display{
			Text: "You have submitted a single bid for the current auction. Click on the artwork ID code " +
				"below for more information.",
			Buttons: bidButtons(bids),
		}, nil
	default:
		return reply.Display{
			Text: fmt.Sprintf("You have submitted bids for %d artworks. Click on one of the artwork ID codes "+
				"below for more information.", len(bids)),
			Buttons: bidButtons(bids),
		}, nil
	}
}

func bidButtons(bids []models.BidEntry) []reply.Button {
	buttons := make([]reply.Button, 0, len(bids))
	for _, b := range bids {
		buttons = append(buttons, reply.Button{
			Title:   fmt.Sprintf("%s ($%d)", b.ArtworkID, b.Value),
			Payload: reply.InfoCardPayload(b.ArtworkID),
		})
	}
	return buttons
}

// lookup resolves rawID to an artwork. Invalid and unknown ids come back as a
// user-facing Display together with the matching sentinel error.
func (a *Assistant) lookup(ctx context.Context, rawID string) (models.Artwork, reply.Display, error) {
	artwork, err := a.svc.GetArtwork(ctx, rawID)
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidFormat):
		return models.Artwork{}, reply.Display{Text: reply.InvalidArtworkIDHintText(rawID)}, err
	case errors.Is(err, biddingerrors.ErrArtworkNotFound):
		id := strings.ToUpper(strings.TrimSpace(rawID))
		return models.Artwork{}, reply.Display{
			Text: fmt.Sprintf("Sorry, there is no artwork with ID code %s. Please try again.", id),
		}, err
	case err != nil:
		return models.Artwork{}, reply.Display{}, fmt.Errorf("assistant: %w", err)
	}
	return artwork, reply.Display{}, nil
}

// BidCount tells how many users have bid on an artwork
func (a *Assistant) BidCount(ctx context.Context, rawID string) (reply.Display, error) {
	artwork, display, err := a.lookup(ctx, rawID)
	if err != nil {
		return display, err
	}

	n, err := a.svc.CountBids(ctx, artwork.ArtworkID)
	if err != nil {
		return reply.Display{}, fmt.Errorf("assistant: %w", err)
	}

	if n == 0 {
		return reply.Display{Text: fmt.Sprintf("No bids have been submitted for artwork %s (\"%s\" by %s).",
			artwork.ArtworkID, artwork.Title, artwork.ArtistName)}, nil
	}
	return reply.Display{Text: fmt.Sprintf("In total, %d users have bid on %s (\"%s\" by %s).",
		n, artwork.ArtworkID, artwork.Title, artwork.ArtistName)}, nil
}

// InfoCard shows everything known about an artwork, including the active user's bid
func (a *Assistant) InfoCard(ctx context.Context, rawID string) (reply.Display, error) {
	artwork, display, err := a.lookup(ctx, rawID)
	if err != nil {
		return display, err
	}

	n, err := a.svc.CountBids(ctx, artwork.ArtworkID)
	if err != nil {
		return reply.Display{}, fmt.Errorf("assistant: %w", err)
	}
	bid, ok, err := a.svc.GetBid(ctx, a.activeUser, artwork.ArtworkID)
	if err != nil {
		return reply.Display{}, fmt.Errorf("assistant: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\nArtist: %s\nID code: %s\nCategory: %s\nMedium: %s\nMinimum bid: $%d\nCurrent number of bids: %d",
		artwork.Title, artwork.ArtistName, artwork.ArtworkID, artwork.Category, artwork.Medium, artwork.MinBid, n)
	if ok {
		fmt.Fprintf(&b, "\nYour bid: $%d", bid.Value)
	} else {
		b.WriteString("\nYou have not submitted a bid for this artwork.")
	}
	return reply.Display{Text: b.String()}, nil
}

// MinimumBid answers the minimum bid of an artwork along with its title and artist
func (a *Assistant) MinimumBid(ctx context.Context, rawID string) (reply.Display, error) {
	artwork, display, err := a.lookup(ctx, rawID)
	if err != nil {
		return display, err
	}
	return reply.Display{Text: fmt.Sprintf("%s is the ID code for the artwork \"%s\" by %s. The minimum bid is $%d.",
		artwork.ArtworkID, artwork.Title, artwork.ArtistName, artwork.MinBid)}, nil
}

var _ GalleryService = (*bidding.BiddingService)(nil)
