package store

import (
	"errors"
	"time"

	"steamparty/backend/internal/match"
	"steamparty/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameStore is the cache of enriched game records. Reads return (nil, nil)
// when a record is absent; absence is an ordinary outcome, not an error.
type GameStore struct {
	db         *gorm.DB
	staleAfter time.Duration
}

// NewGameStore wraps db with the given staleness window.
func NewGameStore(db *gorm.DB, staleAfter time.Duration) *GameStore {
	return &GameStore{db: db, staleAfter: staleAfter}
}

// Get returns the record for gameID, or nil when unknown.
func (s *GameStore) Get(gameID string) (*models.Game, error) {
	var game models.Game
	err := s.db.First(&game, "game_id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Upsert inserts the record or replaces its mutable fields (name, genre,
// price, initial price, image, description, refreshed_at). Tags are only
// written when the incoming record carries them, and is_multiplayer is
// fixed at insert time — a routine refresh never recomputes either, since
// re-tagging rides the slow tag-lookup group.
func (s *GameStore) Upsert(game *models.Game) error {
	cols := []string{"name", "genre", "price", "initial_price", "header_image", "description", "refreshed_at"}
	if game.Tags != "" {
		cols = append(cols, "tags")
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(game).Error
}

// IsStale reports whether the record's last refresh is at least the
// staleness window ago. The boundary itself counts as stale.
func (s *GameStore) IsStale(game *models.Game, now time.Time) bool {
	return now.Sub(game.RefreshedAt) >= s.staleAfter
}

// UpdatePriceOnly is the narrow update used by the daily price sweep; it
// touches nothing but the price pair and the refresh timestamp.
func (s *GameStore) UpdatePriceOnly(gameID string, price, initialPrice float64, refreshedAt time.Time) error {
	return s.db.Model(&models.Game{}).
		Where("game_id = ?", gameID).
		Updates(map[string]any{
			"price":         price,
			"initial_price": initialPrice,
			"refreshed_at":  refreshedAt,
		}).Error
}

// ListIDs returns every known game ID, for the price sweep.
func (s *GameStore) ListIDs() ([]string, error) {
	var ids []string
	err := s.db.Model(&models.Game{}).Pluck("game_id", &ids).Error
	return ids, err
}

// List returns a page of cached records, newest refresh first.
func (s *GameStore) List(offset, limit int) ([]models.Game, int64, error) {
	var total int64
	if err := s.db.Model(&models.Game{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var games []models.Game
	err := s.db.Order("refreshed_at DESC").Offset(offset).Limit(limit).Find(&games).Error
	return games, total, err
}

// ListForUser returns the user's multiplayer games passing the filter, in
// library (association) order. The filter arrives as data and becomes
// parameterized predicates here.
func (s *GameStore) ListForUser(userID string, f match.Filter) ([]models.Game, error) {
	q := s.db.Model(&models.Game{}).
		Joins("JOIN user_games ON user_games.game_id = games.game_id").
		Where("user_games.user_id = ?", userID).
		Where("games.is_multiplayer = ?", true).
		Order("user_games.created_at")

	if f.Tag != "" {
		q = q.Where("games.tags LIKE ?", "%"+f.Tag+"%")
	}
	if f.Genre != "" {
		q = q.Where("games.genre LIKE ?", "%"+f.Genre+"%")
	}
	switch f.Price {
	case match.PriceFree:
		q = q.Where("games.price = 0")
	case match.PriceUnderTen:
		q = q.Where("games.price <= ?", 10.0)
	case match.PriceUnderForty:
		q = q.Where("games.price <= ?", 40.0)
	case match.PriceRange:
		q = q.Where("games.price BETWEEN ? AND ?", f.MinPrice, f.MaxPrice)
	}

	var games []models.Game
	err := q.Find(&games).Error
	return games, err
}
