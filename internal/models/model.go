package models

// User represents a gallery client who can place bids
type User struct {
	UserName string `json:"user_name" yaml:"user_name"`
}

// Artwork represents a catalog entry offered at auction
type Artwork struct {
	ArtworkID  string `json:"artwork_id" yaml:"artwork_id"`
	Title      string `json:"title" yaml:"title"`
	ArtistName string `json:"artist_name" yaml:"artist_name"`
	Medium     string `json:"medium" yaml:"medium"`
	Category   string `json:"category" yaml:"category"`
	MinBid     int64  `json:"min_bid" yaml:"min_bid"`
}

// Bid represents a user's bid on an artwork. At most one bid exists per (user, artwork) pair.
type Bid struct {
	UserName  string `json:"user_name" yaml:"user_name"`
	ArtworkID string `json:"artwork_id" yaml:"artwork_id"`
	Value     int64  `json:"value" yaml:"value"`
}

// BidEntry is the (artwork, value) pair returned when listing a user's bids
type BidEntry struct {
	ArtworkID string `json:"artwork_id"`
	Value     int64  `json:"value"`
}
