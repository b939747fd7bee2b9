package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gallery-assistant/internal/biddingerrors"
	model "gallery-assistant/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// GalleryDB defines the artwork catalog and bid ledger storage interface
type GalleryDB interface {
	GetArtwork(ctx context.Context, artworkID string) (model.Artwork, bool, error)
	GetMinimumBid(ctx context.Context, artworkID string) (int64, bool, error)
	CountBids(ctx context.Context, artworkID string) (int, error)
	UserExists(ctx context.Context, userName string) (bool, error)
	GetBid(ctx context.Context, userName, artworkID string) (model.Bid, bool, error)
	ListBids(ctx context.Context, userName string) ([]model.BidEntry, error)
	UpsertBid(ctx context.Context, userName, artworkID string, newValue int64, createIfMissing bool) (Outcome, error)
}

// Seeder loads users and artworks into a store at initialization
type Seeder interface {
	AddUser(ctx context.Context, user model.User) error
	AddArtwork(ctx context.Context, artwork model.Artwork) error
}

type bidKey struct {
	userName  string
	artworkID string
}

// MemoryRepo is a concurrency-safe in-memory implementation of GalleryDB
type MemoryRepo struct {
	mu       sync.RWMutex
	users    map[string]struct{}
	artworks map[string]model.Artwork
	bids     map[bidKey]int64
	userBids map[string][]string // key: userName -> value: artworkIDs in creation order
	bidders  map[string]int      // key: artworkID -> value: number of bids
}

var _ GalleryDB = (*MemoryRepo)(nil)
var _ Seeder = (*MemoryRepo)(nil)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[string]struct{}),
		artworks: make(map[string]model.Artwork),
		bids:     make(map[bidKey]int64),
		userBids: make(map[string][]string),
		bidders:  make(map[string]int),
	}
}

// GetArtwork returns the artwork with the given id; ok is false if it does not exist
func (r *MemoryRepo) GetArtwork(_ context.Context, artworkID string) (model.Artwork, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artwork, ok := r.artworks[artworkID]
	return artwork, ok, nil
}

// GetMinimumBid returns the minimum bid of an artwork
func (r *MemoryRepo) GetMinimumBid(ctx context.Context, artworkID string) (int64, bool, error) {
	artwork, ok, err := r.GetArtwork(ctx, artworkID)
	if err != nil || !ok {
		return 0, false, err
	}
	return artwork.MinBid, true, nil
}

// CountBids returns the number of users that have bid on an artwork
func (r *MemoryRepo) CountBids(_ context.Context, artworkID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bidders[artworkID], nil
}

// UserExists reports whether the user is registered
func (r *MemoryRepo) UserExists(_ context.Context, userName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userName]
	return ok, nil
}

// GetBid returns the user's bid on an artwork
func (r *MemoryRepo) GetBid(_ context.Context, userName, artworkID string) (model.Bid, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.bids[bidKey{userName: userName, artworkID: artworkID}]
	if !ok {
		return model.Bid{}, false, nil
	}
	return model.Bid{UserName: userName, ArtworkID: artworkID, Value: value}, true, nil
}

// ListBids returns the user's bids in the order they were created
func (r *MemoryRepo) ListBids(_ context.Context, userName string) ([]model.BidEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.userBids[userName]
	entries := make([]model.BidEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, model.BidEntry{
			ArtworkID: id,
			Value:     r.bids[bidKey{userName: userName, artworkID: id}],
		})
	}
	return entries, nil
}

// UpsertBid creates or updates the user's bid on an artwork. The existence checks,
// the minimum-bid check and the write happen under a single write lock.
func (r *MemoryRepo) UpsertBid(_ context.Context, userName, artworkID string, newValue int64, createIfMissing bool) (Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := bidKey{userName: userName, artworkID: artworkID}
	if oldValue, ok := r.bids[key]; ok {
		minBid := r.artworks[artworkID].MinBid
		if newValue < minBid {
			return RejectedBelowMinimum(minBid), nil
		}
		r.bids[key] = newValue
		return Updated(oldValue, newValue), nil
	}

	if !createIfMissing {
		return RejectedNoExistingBid(), nil
	}

	_, userOK := r.users[userName]
	artwork, artworkOK := r.artworks[artworkID]
	if !userOK || !artworkOK {
		return RejectedMissingEntity(), nil
	}
	if newValue < artwork.MinBid {
		return RejectedBelowMinimum(artwork.MinBid), nil
	}

	r.bids[key] = newValue
	r.userBids[userName] = append(r.userBids[userName], artworkID)
	r.bidders[artworkID]++
	return Created(newValue), nil
}

// AddUser registers a user. This method is intended for seeding and tests.
func (r *MemoryRepo) AddUser(_ context.Context, user model.User) error {
	if strings.TrimSpace(user.UserName) == "" {
		return fmt.Errorf("add user: %w", biddingerrors.ErrEmptyUser)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserName] = struct{}{}
	return nil
}

// AddArtwork adds or replaces an artwork. This method is intended for seeding and tests.
func (r *MemoryRepo) AddArtwork(_ context.Context, artwork model.Artwork) error {
	if artwork.MinBid < 0 {
		return fmt.Errorf("add artwork %s: negative minimum bid %d", artwork.ArtworkID, artwork.MinBid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.artworks[artwork.ArtworkID] = artwork
	return nil
}
