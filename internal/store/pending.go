package store

import (
	"time"

	"steamparty/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Queue is the durable overflow for enrichment work that could not run
// inside a request. Entries survive until explicitly removed after a
// successful enrichment, so a crash mid-batch re-delivers the remainder.
type Queue struct {
	db *gorm.DB
}

// NewQueue wraps db.
func NewQueue(db *gorm.DB) *Queue {
	return &Queue{db: db}
}

// Enqueue queues gameID for background enrichment. Queueing an already
// queued game is a no-op.
func (q *Queue) Enqueue(gameID string, at time.Time) error {
	return q.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PendingGame{GameID: gameID, CreatedAt: at}).Error
}

// Drain returns up to limit game IDs, oldest first, without removing them.
// The worker removes each one only after it has been enriched.
func (q *Queue) Drain(limit int) ([]string, error) {
	var ids []string
	err := q.db.Model(&models.PendingGame{}).
		Order("created_at ASC").
		Limit(limit).
		Pluck("game_id", &ids).Error
	return ids, err
}

// Remove deletes a processed entry.
func (q *Queue) Remove(gameID string) error {
	return q.db.Delete(&models.PendingGame{}, "game_id = ?", gameID).Error
}

// Len returns the number of queued entries.
func (q *Queue) Len() (int64, error) {
	var n int64
	err := q.db.Model(&models.PendingGame{}).Count(&n).Error
	return n, err
}
