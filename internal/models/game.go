package models

import "time"

// Game is a cached, enriched catalog record for a single Steam app.
// GameID is the opaque catalog app ID; one row per app.
type Game struct {
	GameID        string    `gorm:"primaryKey;size:32" json:"game_id"`
	Name          string    `gorm:"size:255" json:"name"`
	Genre         string    `json:"genre"` // comma-joined category names
	Tags          string    `json:"tags"`  // comma-joined community tags, may be empty
	IsMultiplayer bool      `gorm:"index" json:"is_multiplayer"`
	Price         float64   `json:"price"`
	InitialPrice  float64   `json:"initial_price"`
	HeaderImage   string    `gorm:"size:512" json:"header_image"`
	StoreURL      string    `gorm:"size:512" json:"store_url"`
	Description   string    `json:"description"`
	RefreshedAt   time.Time `json:"refreshed_at"`
}
