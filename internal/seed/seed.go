// Package seed loads the initial users, artworks and bids into a store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	model "gallery-assistant/internal/models"
	"gallery-assistant/internal/repository"
	"gallery-assistant/internal/validator"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the content of a seed file
type Data struct {
	Users    []model.User    `yaml:"users"`
	Artworks []model.Artwork `yaml:"artworks"`
	Bids     []model.Bid     `yaml:"bids"`
}

// Store is what seeding writes to
type Store interface {
	repository.Seeder
	GetBid(ctx context.Context, userName, artworkID string) (model.Bid, bool, error)
	UpsertBid(ctx context.Context, userName, artworkID string, newValue int64, createIfMissing bool) (repository.Outcome, error)
}

// Default returns the bundled sample gallery
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// LoadFile reads a seed file; an empty path yields the bundled sample gallery
func LoadFile(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes seed YAML and checks artwork ids
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for _, a := range d.Artworks {
		if !validator.IsValidArtworkID(a.ArtworkID) {
			return nil, fmt.Errorf("seed: invalid artwork id %q", a.ArtworkID)
		}
	}
	return &d, nil
}

// Apply writes d to store. Bids go through UpsertBid so they obey the minimum-bid rule;
// a bid already on record is left alone so re-seeding a persistent store keeps user changes.
func Apply(ctx context.Context, store Store, d *Data) error {
	for _, u := range d.Users {
		if err := store.AddUser(ctx, u); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	for _, a := range d.Artworks {
		if err := store.AddArtwork(ctx, a); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	for _, b := range d.Bids {
		_, exists, err := store.GetBid(ctx, b.UserName, b.ArtworkID)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if exists {
			continue
		}
		outcome, err := store.UpsertBid(ctx, b.UserName, b.ArtworkID, b.Value, true)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if !outcome.Committed() {
			return fmt.Errorf("seed: bid %s/%s rejected: %w", b.UserName, b.ArtworkID, outcome.Err())
		}
	}
	return nil
}
