package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gallery-assistant/internal/biddingerrors"
	model "gallery-assistant/internal/models"

	_ "github.com/glebarez/go-sqlite"
)

// SQLiteRepo is a GalleryDB backed by SQLite. The *sql.DB handle is owned by the caller.
type SQLiteRepo struct {
	db *sql.DB
}

var _ GalleryDB = (*SQLiteRepo)(nil)
var _ Seeder = (*SQLiteRepo)(nil)

// OpenSQLite opens a SQLite database at path (":memory:" for a private in-memory store).
// The pool is limited to one connection so every transaction is serialized and an
// in-memory database is shared by all callers of the handle.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// NewSQLiteRepo creates the schema if needed and returns a repository on db
func NewSQLiteRepo(ctx context.Context, db *sql.DB) (*SQLiteRepo, error) {
	r := &SQLiteRepo{db: db}
	if err := r.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepo) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_name TEXT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS artworks (
			artwork_id  TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			artist_name TEXT NOT NULL,
			medium      TEXT NOT NULL,
			category    TEXT NOT NULL,
			min_bid     INTEGER NOT NULL CHECK (min_bid >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS bids (
			user_name  TEXT NOT NULL REFERENCES users(user_name),
			artwork_id TEXT NOT NULL REFERENCES artworks(artwork_id),
			value      INTEGER NOT NULL,
			PRIMARY KEY (user_name, artwork_id)
		);`,
	}
	for _, q := range queries {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// GetArtwork returns the artwork with the given id; ok is false if it does not exist
func (r *SQLiteRepo) GetArtwork(ctx context.Context, artworkID string) (model.Artwork, bool, error) {
	var a model.Artwork
	ok, err := queryOne(ctx, r.db,
		`SELECT artwork_id, title, artist_name, medium, category, min_bid FROM artworks WHERE artwork_id = ?`,
		[]any{artworkID},
		&a.ArtworkID, &a.Title, &a.ArtistName, &a.Medium, &a.Category, &a.MinBid,
	)
	if err != nil {
		return model.Artwork{}, false, fmt.Errorf("get artwork %s: %w", artworkID, err)
	}
	return a, ok, nil
}

// GetMinimumBid returns the minimum bid of an artwork
func (r *SQLiteRepo) GetMinimumBid(ctx context.Context, artworkID string) (int64, bool, error) {
	var minBid int64
	ok, err := queryOne(ctx, r.db, `SELECT min_bid FROM artworks WHERE artwork_id = ?`, []any{artworkID}, &minBid)
	if err != nil {
		return 0, false, fmt.Errorf("get minimum bid for %s: %w", artworkID, err)
	}
	return minBid, ok, nil
}

// CountBids returns the number of users that have bid on an artwork
func (r *SQLiteRepo) CountBids(ctx context.Context, artworkID string) (int, error) {
	var n int
	if _, err := queryOne(ctx, r.db, `SELECT COUNT(*) FROM bids WHERE artwork_id = ?`, []any{artworkID}, &n); err != nil {
		return 0, fmt.Errorf("count bids for %s: %w", artworkID, err)
	}
	return n, nil
}

// UserExists reports whether the user is registered
func (r *SQLiteRepo) UserExists(ctx context.Context, userName string) (bool, error) {
	var one int
	ok, err := queryOne(ctx, r.db, `SELECT 1 FROM users WHERE user_name = ?`, []any{userName}, &one)
	if err != nil {
		return false, fmt.Errorf("lookup user %s: %w", userName, err)
	}
	return ok, nil
}

// GetBid returns the user's bid on an artwork
func (r *SQLiteRepo) GetBid(ctx context.Context, userName, artworkID string) (model.Bid, bool, error) {
	b := model.Bid{UserName: userName, ArtworkID: artworkID}
	ok, err := queryOne(ctx, r.db,
		`SELECT value FROM bids WHERE user_name = ? AND artwork_id = ?`,
		[]any{userName, artworkID}, &b.Value)
	if err != nil {
		return model.Bid{}, false, fmt.Errorf("get bid %s/%s: %w", userName, artworkID, err)
	}
	if !ok {
		return model.Bid{}, false, nil
	}
	return b, true, nil
}

// ListBids returns the user's bids in the order they were created. Updates keep
// the row's rowid, so creation order is preserved.
func (r *SQLiteRepo) ListBids(ctx context.Context, userName string) ([]model.BidEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT artwork_id, value FROM bids WHERE user_name = ? ORDER BY rowid`, userName)
	if err != nil {
		return nil, fmt.Errorf("list bids for %s: %w", userName, err)
	}
	defer rows.Close()

	entries := make([]model.BidEntry, 0)
	for rows.Next() {
		var e model.BidEntry
		if err := rows.Scan(&e.ArtworkID, &e.Value); err != nil {
			return nil, fmt.Errorf("scan bid for %s: %w", userName, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bids for %s: %w", userName, err)
	}
	return entries, nil
}

// UpsertBid creates or updates the user's bid on an artwork inside one transaction.
// The artwork's minimum is read in the same transaction as the write.
func (r *SQLiteRepo) UpsertBid(ctx context.Context, userName, artworkID string, newValue int64, createIfMissing bool) (Outcome, error) {
	outcome, err := withTx(ctx, r.db, func(tx *sql.Tx) (Outcome, error) {
		var oldValue, minBid int64
		exists, err := queryOne(ctx, tx, `
			SELECT b.value, a.min_bid
			FROM bids b JOIN artworks a ON a.artwork_id = b.artwork_id
			WHERE b.user_name = ? AND b.artwork_id = ?`,
			[]any{userName, artworkID}, &oldValue, &minBid)
		if err != nil {
			return Outcome{}, err
		}

		if exists {
			if newValue < minBid {
				return RejectedBelowMinimum(minBid), nil
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE bids SET value = ? WHERE user_name = ? AND artwork_id = ?`,
				newValue, userName, artworkID); err != nil {
				return Outcome{}, err
			}
			return Updated(oldValue, newValue), nil
		}

		if !createIfMissing {
			return RejectedNoExistingBid(), nil
		}

		var one int
		userOK, err := queryOne(ctx, tx, `SELECT 1 FROM users WHERE user_name = ?`, []any{userName}, &one)
		if err != nil {
			return Outcome{}, err
		}
		artworkOK, err := queryOne(ctx, tx, `SELECT min_bid FROM artworks WHERE artwork_id = ?`, []any{artworkID}, &minBid)
		if err != nil {
			return Outcome{}, err
		}
		if !userOK || !artworkOK {
			return RejectedMissingEntity(), nil
		}
		if newValue < minBid {
			return RejectedBelowMinimum(minBid), nil
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bids (user_name, artwork_id, value) VALUES (?, ?, ?)`,
			userName, artworkID, newValue); err != nil {
			return Outcome{}, err
		}
		return Created(newValue), nil
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("upsert bid %s/%s: %w", userName, artworkID, err)
	}
	return outcome, nil
}

// AddUser registers a user, ignoring duplicates
func (r *SQLiteRepo) AddUser(ctx context.Context, user model.User) error {
	if strings.TrimSpace(user.UserName) == "" {
		return fmt.Errorf("add user: %w", biddingerrors.ErrEmptyUser)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_name) VALUES (?) ON CONFLICT(user_name) DO NOTHING`, user.UserName); err != nil {
		return fmt.Errorf("add user %s: %w", user.UserName, err)
	}
	return nil
}

// AddArtwork adds an artwork or replaces its attributes in place
func (r *SQLiteRepo) AddArtwork(ctx context.Context, a model.Artwork) error {
	if a.MinBid < 0 {
		return fmt.Errorf("add artwork %s: negative minimum bid %d", a.ArtworkID, a.MinBid)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO artworks (artwork_id, title, artist_name, medium, category, min_bid)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(artwork_id) DO UPDATE SET
			title = excluded.title,
			artist_name = excluded.artist_name,
			medium = excluded.medium,
			category = excluded.category,
			min_bid = excluded.min_bid`,
		a.ArtworkID, a.Title, a.ArtistName, a.Medium, a.Category, a.MinBid)
	if err != nil {
		return fmt.Errorf("add artwork %s: %w", a.ArtworkID, err)
	}
	return nil
}
