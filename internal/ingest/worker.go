package ingest

import (
	"context"
	"sync/atomic"
	"time"

	"steamparty/backend/internal/models"
	"steamparty/backend/internal/store"

	"go.uber.org/zap"
)

// Worker drains the enrichment queue on a fixed interval, pushing each
// entry through the rate-limited catalog client into the cache. Entries are
// removed only after a successful enrichment, so failures (and crashes
// mid-batch) leave work queued for the next cycle.
type Worker struct {
	catalog Catalog
	games   *store.GameStore
	queue   *store.Queue
	log     *zap.Logger
	now     func() time.Time

	interval time.Duration
	batch    int

	// Guards against overlapping drains when a batch outlives the tick.
	running atomic.Bool
}

// NewWorker builds a drain worker.
func NewWorker(catalog Catalog, games *store.GameStore, queue *store.Queue, interval time.Duration, batch int, log *zap.Logger) *Worker {
	return &Worker{
		catalog:  catalog,
		games:    games,
		queue:    queue,
		log:      log,
		now:      time.Now,
		interval: interval,
		batch:    batch,
	}
}

// Start runs the drain loop until ctx is canceled.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := w.RunOnce(ctx); err != nil {
					w.log.Error("queue drain failed", zap.Error(err))
				} else if n > 0 {
					w.log.Info("queue drained", zap.Int("processed", n))
				}
			}
		}
	}()
}

// RunOnce drains one batch. If a previous drain is still in flight it
// returns immediately; there is never more than one batch running.
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	if !w.running.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer w.running.Store(false)

	ids, err := w.queue.Drain(w.batch)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if w.enrich(ctx, id) {
			processed++
		}
	}
	return processed, nil
}

// enrich fully processes one queued game, tags included — the queue is the
// one place slow tag lookups are affordable. Reports whether the entry was
// completed and removed.
func (w *Worker) enrich(ctx context.Context, gameID string) bool {
	details, err := w.catalog.GetAppDetails(ctx, gameID)
	if err != nil {
		// Leave it queued; the next cycle retries.
		w.log.Warn("queued enrichment failed", zap.String("game_id", gameID), zap.Error(err))
		return false
	}

	tags, err := w.catalog.GetTags(ctx, gameID)
	if err != nil {
		w.log.Warn("tag lookup failed, enriching without tags",
			zap.String("game_id", gameID),
			zap.Error(err),
		)
		tags = ""
	}

	rec := &models.Game{
		GameID:        gameID,
		Name:          details.Name,
		Genre:         details.Genre,
		Tags:          tags,
		IsMultiplayer: details.IsMultiplayer,
		Price:         details.Price,
		InitialPrice:  details.InitialPrice,
		HeaderImage:   details.HeaderImage,
		StoreURL:      storeURL(gameID),
		Description:   details.Description,
		RefreshedAt:   w.now(),
	}
	if err := w.games.Upsert(rec); err != nil {
		w.log.Error("cache write failed", zap.String("game_id", gameID), zap.Error(err))
		return false
	}

	if err := w.queue.Remove(gameID); err != nil {
		w.log.Error("queue remove failed", zap.String("game_id", gameID), zap.Error(err))
		return false
	}
	return true
}

func storeURL(gameID string) string {
	return "https://store.steampowered.com/app/" + gameID
}
