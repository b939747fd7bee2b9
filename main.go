package main

import (
	"context"
	"fmt"
	"os"

	"gallery-assistant/internal/assistant"
	bidding "gallery-assistant/internal/biddingService"
	"gallery-assistant/internal/config"
	"gallery-assistant/internal/repository"
	"gallery-assistant/internal/seed"
	"gallery-assistant/internal/server"
	"gallery-assistant/internal/workflow"
	"gallery-assistant/utils"
)

// galleryStore is a catalog and ledger that can also be seeded
type galleryStore interface {
	repository.GalleryDB
	repository.Seeder
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("invalid log level", map[string]any{"error": err.Error()})
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}
	defer closeStore()

	if err := prepopulate(ctx, store, cfg.SeedFile); err != nil {
		utils.Fatal("failed to seed store", map[string]any{"seed_file": cfg.SeedFile, "error": err.Error()})
	}

	loc, err := cfg.Location()
	if err != nil {
		utils.Fatal("invalid auction timezone", map[string]any{"error": err.Error()})
	}

	biddingSvc := bidding.NewBiddingService(store)
	manager := workflow.NewManager(workflow.NewForm(biddingSvc, cfg.ActiveUser))
	gallery := assistant.New(biddingSvc, cfg.ActiveUser, assistant.Schedule{
		LeadDays: cfg.AuctionLeadDays,
		Location: loc,
	})

	router := server.SetupRouter(manager, gallery)

	utils.Info("starting gallery assistant", map[string]any{
		"addr":        cfg.Addr(),
		"store":       cfg.StoreDriver,
		"active_user": cfg.ActiveUser,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		closeStore()
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// openStore builds the configured store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (galleryStore, func(), error) {
	if cfg.StoreDriver != config.StoreSQLite {
		return repository.NewMemoryRepo(), func() {}, nil
	}

	db, err := repository.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repository.NewSQLiteRepo(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() { db.Close() }, nil
}

// prepopulate loads the seed catalog into the store
func prepopulate(ctx context.Context, store galleryStore, seedFile string) error {
	data, err := seed.LoadFile(seedFile)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, store, data); err != nil {
		return err
	}
	utils.Info("store seeded", map[string]any{
		"users":    len(data.Users),
		"artworks": len(data.Artworks),
		"bids":     len(data.Bids),
	})
	return nil
}
