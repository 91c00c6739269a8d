package models

import "time"

// UserGame records that a user owns a game.
// The primary key is a composite of (UserID, GameID) to ensure uniqueness.
// Rows are written by library sync and read by the match engine; they are
// never updated after creation.
type UserGame struct {
	UserID    string `gorm:"primaryKey;size:32"`
	GameID    string `gorm:"primaryKey;size:32"`
	CreatedAt time.Time
}
