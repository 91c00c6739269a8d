package models

import "time"

// PendingGame is a game waiting for background enrichment because the
// synchronous budget ran out or an inline fetch failed. GameID is unique,
// so re-queueing the same game is a no-op. Drained oldest-first.
type PendingGame struct {
	GameID    string    `gorm:"primaryKey;size:32"`
	CreatedAt time.Time `gorm:"index"`
}
