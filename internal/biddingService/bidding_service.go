package bidding

import (
	"context"
	"fmt"
	"strings"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/models"
	"gallery-assistant/internal/repository"
	"gallery-assistant/internal/validator"
	"gallery-assistant/utils"
)

// BiddingService exposes the catalog and ledger to the assistant and the bid workflow
type BiddingService struct {
	repo repository.GalleryDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.GalleryDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// NormalizeArtworkID upper-cases raw input and checks the artwork id format
func NormalizeArtworkID(raw string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	if !validator.IsValidArtworkID(id) {
		return "", fmt.Errorf("service: %w - %q", biddingerrors.ErrInvalidFormat, raw)
	}
	return id, nil
}

// GetArtwork normalizes and validates the id, then looks the artwork up in the catalog
func (s *BiddingService) GetArtwork(ctx context.Context, rawID string) (models.Artwork, error) {
	id, err := NormalizeArtworkID(rawID)
	if err != nil {
		return models.Artwork{}, err
	}

	artwork, ok, err := s.repo.GetArtwork(ctx, id)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("service: failed to get artwork %s: %w", id, err)
	}
	if !ok {
		return models.Artwork{}, fmt.Errorf("service: %w - %s", biddingerrors.ErrArtworkNotFound, id)
	}
	return artwork, nil
}

// GetMinimumBid returns the current minimum bid of an existing artwork
func (s *BiddingService) GetMinimumBid(ctx context.Context, artworkID string) (int64, error) {
	minBid, ok, err := s.repo.GetMinimumBid(ctx, artworkID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get minimum bid for %s: %w", artworkID, err)
	}
	if !ok {
		return 0, fmt.Errorf("service: %w - %s", biddingerrors.ErrArtworkNotFound, artworkID)
	}
	return minBid, nil
}

// GetBid returns the user's bid on an artwork; ok is false if there is none
func (s *BiddingService) GetBid(ctx context.Context, userName, artworkID string) (models.Bid, bool, error) {
	bid, ok, err := s.repo.GetBid(ctx, userName, artworkID)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("service: failed to get bid of %s on %s: %w", userName, artworkID, err)
	}
	return bid, ok, nil
}

// ListBids returns the user's bids in creation order
func (s *BiddingService) ListBids(ctx context.Context, userName string) ([]models.BidEntry, error) {
	if userName == "" {
		return nil, fmt.Errorf("service: %w", biddingerrors.ErrEmptyUser)
	}

	bids, err := s.repo.ListBids(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for %s: %w", userName, err)
	}
	return bids, nil
}

// CountBids returns how many users have bid on an artwork
func (s *BiddingService) CountBids(ctx context.Context, artworkID string) (int, error) {
	n, err := s.repo.CountBids(ctx, artworkID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count bids for %s: %w", artworkID, err)
	}
	return n, nil
}

// ModifyBid creates or updates the user's bid. Business-rule rejections come back as
// an Outcome; an error means the store failed and nothing was written.
func (s *BiddingService) ModifyBid(ctx context.Context, userName, artworkID string, value int64, createIfMissing bool) (repository.Outcome, error) {
	if userName == "" {
		return repository.Outcome{}, fmt.Errorf("service: %w", biddingerrors.ErrEmptyUser)
	}

	outcome, err := s.repo.UpsertBid(ctx, userName, artworkID, value, createIfMissing)
	if err != nil {
		return repository.Outcome{}, fmt.Errorf("service: failed to modify bid of %s on %s: %w", userName, artworkID, err)
	}

	fields := map[string]any{
		"user_name":  userName,
		"artwork_id": artworkID,
		"value":      value,
		"outcome":    outcome.Kind.String(),
	}
	if outcome.Committed() {
		utils.Info("bid modified", fields)
	} else {
		utils.Warn("bid modification rejected", fields)
	}
	return outcome, nil
}
