package ingest

import (
	"context"
	"time"

	"steamparty/backend/internal/store"

	"go.uber.org/zap"
)

// PriceRefresher is the lightweight daily sweep: it walks every cached game
// and updates only the price pair, leaving the rest of the record alone.
type PriceRefresher struct {
	catalog  Catalog
	games    *store.GameStore
	log      *zap.Logger
	now      func() time.Time
	interval time.Duration
}

// NewPriceRefresher builds the sweep with the given period.
func NewPriceRefresher(catalog Catalog, games *store.GameStore, interval time.Duration, log *zap.Logger) *PriceRefresher {
	return &PriceRefresher{
		catalog:  catalog,
		games:    games,
		log:      log,
		now:      time.Now,
		interval: interval,
	}
}

// Start runs the sweep loop until ctx is canceled.
func (p *PriceRefresher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := p.RunOnce(ctx); err != nil {
					p.log.Error("price sweep failed", zap.Error(err))
				} else {
					p.log.Info("price sweep finished", zap.Int("updated", n))
				}
			}
		}
	}()
}

// RunOnce refreshes prices for every known game, best effort per game.
func (p *PriceRefresher) RunOnce(ctx context.Context) (int, error) {
	ids, err := p.games.ListIDs()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		details, err := p.catalog.GetAppDetails(ctx, id)
		if err != nil {
			p.log.Warn("price fetch failed", zap.String("game_id", id), zap.Error(err))
			continue
		}
		if err := p.games.UpdatePriceOnly(id, details.Price, details.InitialPrice, p.now()); err != nil {
			p.log.Error("price update failed", zap.String("game_id", id), zap.Error(err))
			continue
		}
		updated++
	}
	return updated, nil
}
