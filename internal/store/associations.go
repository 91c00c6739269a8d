package store

import (
	"steamparty/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssociationStore records game ownership per user. Inserts are idempotent:
// a duplicate (user, game) pair is success, not an error.
type AssociationStore struct {
	db *gorm.DB
}

// NewAssociationStore wraps db.
func NewAssociationStore(db *gorm.DB) *AssociationStore {
	return &AssociationStore{db: db}
}

// Add records that the user owns the game.
func (s *AssociationStore) Add(userID, gameID string) error {
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserGame{UserID: userID, GameID: gameID}).Error
}

// CountForUser returns how many games are associated with the user.
func (s *AssociationStore) CountForUser(userID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.UserGame{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
