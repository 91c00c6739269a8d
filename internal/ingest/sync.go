package ingest

import (
	"context"
	"sync"
	"time"

	"steamparty/backend/internal/models"
	"steamparty/backend/internal/steam"
	"steamparty/backend/internal/store"

	"go.uber.org/zap"
)

// Catalog is the slice of the Steam client the ingestion side needs.
type Catalog interface {
	GetOwnedGames(ctx context.Context, steamID string) ([]steam.OwnedGame, error)
	GetAppDetails(ctx context.Context, appID string) (*steam.AppDetails, error)
	GetTags(ctx context.Context, appID string) (string, error)
}

// Syncer reconciles a user's externally-reported library with the cache,
// the association table and the overflow queue.
type Syncer struct {
	catalog Catalog
	games   *store.GameStore
	assocs  *store.AssociationStore
	queue   *store.Queue
	log     *zap.Logger
	now     func() time.Time

	// Inline enrichment budget for the lifetime of this Syncer. Once spent,
	// every cache miss overflows to the queue.
	mu        sync.Mutex
	remaining int
}

// NewSyncer builds a Syncer with the given inline enrichment budget.
func NewSyncer(catalog Catalog, games *store.GameStore, assocs *store.AssociationStore, queue *store.Queue, budget int, log *zap.Logger) *Syncer {
	return &Syncer{
		catalog:   catalog,
		games:     games,
		assocs:    assocs,
		queue:     queue,
		log:       log,
		now:       time.Now,
		remaining: budget,
	}
}

// Sync fetches the user's owned games and reconciles each one. Known stale
// records get a synchronous refresh; unknown games are enriched inline
// while the budget lasts and queued otherwise. The association is written
// either way, so joins see the game immediately (with sparse data until the
// worker catches up). Running Sync twice on an unchanged library converges:
// no duplicate rows, identical record state.
//
// Returns the number of games reconciled.
func (s *Syncer) Sync(ctx context.Context, steamID string) (int, error) {
	owned, err := s.catalog.GetOwnedGames(ctx, steamID)
	if err != nil {
		return 0, err
	}

	for _, g := range owned {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		s.reconcile(ctx, steamID, g)
	}

	s.log.Info("library synced",
		zap.String("steam_id", steamID),
		zap.Int("games", len(owned)),
	)
	return len(owned), nil
}

func (s *Syncer) reconcile(ctx context.Context, steamID string, g steam.OwnedGame) {
	rec, err := s.games.Get(g.AppID)
	if err != nil {
		s.log.Error("cache read failed", zap.String("game_id", g.AppID), zap.Error(err))
		return
	}

	switch {
	case rec == nil:
		s.enrichOrQueue(ctx, g)
	case s.games.IsStale(rec, s.now()):
		s.refresh(ctx, g, rec)
	}

	// The association never waits on enrichment.
	if err := s.assocs.Add(steamID, g.AppID); err != nil {
		s.log.Error("association write failed",
			zap.String("steam_id", steamID),
			zap.String("game_id", g.AppID),
			zap.Error(err),
		)
	}
}

// enrichOrQueue handles a cache miss: inline enrichment while the budget
// lasts, overflow to the queue on exhaustion or upstream failure.
func (s *Syncer) enrichOrQueue(ctx context.Context, g steam.OwnedGame) {
	if !s.spendBudget() {
		s.enqueue(g.AppID)
		return
	}

	details, err := s.catalog.GetAppDetails(ctx, g.AppID)
	if err != nil {
		s.log.Warn("inline enrichment failed, queueing",
			zap.String("game_id", g.AppID),
			zap.Error(err),
		)
		s.enqueue(g.AppID)
		return
	}

	rec := recordFromDetails(g, details, s.now())
	if err := s.games.Upsert(rec); err != nil {
		s.log.Error("cache write failed", zap.String("game_id", g.AppID), zap.Error(err))
	}
}

// refresh re-fetches price and genre for a stale record. Tags and the
// multiplayer flag are left alone; only a full reprocessing touches those.
func (s *Syncer) refresh(ctx context.Context, g steam.OwnedGame, rec *models.Game) {
	details, err := s.catalog.GetAppDetails(ctx, g.AppID)
	if err != nil {
		// Stale data beats no data; serve the cached record as-is.
		s.log.Warn("refresh failed, keeping stale record",
			zap.String("game_id", g.AppID),
			zap.Error(err),
		)
		return
	}

	updated := recordFromDetails(g, details, s.now())
	if err := s.games.Upsert(updated); err != nil {
		s.log.Error("cache write failed", zap.String("game_id", g.AppID), zap.Error(err))
	}
}

func (s *Syncer) enqueue(gameID string) {
	if err := s.queue.Enqueue(gameID, s.now()); err != nil {
		s.log.Error("enqueue failed", zap.String("game_id", gameID), zap.Error(err))
	}
}

func (s *Syncer) spendBudget() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remaining <= 0 {
		return false
	}
	s.remaining--
	return true
}

// recordFromDetails merges store-front details with the library entry,
// falling back to the library's name and artwork when the detail record
// omits them.
func recordFromDetails(g steam.OwnedGame, d *steam.AppDetails, now time.Time) *models.Game {
	rec := &models.Game{
		GameID:        g.AppID,
		Name:          d.Name,
		Genre:         d.Genre,
		IsMultiplayer: d.IsMultiplayer,
		Price:         d.Price,
		InitialPrice:  d.InitialPrice,
		HeaderImage:   d.HeaderImage,
		StoreURL:      g.StoreURL,
		Description:   d.Description,
		RefreshedAt:   now,
	}
	if rec.Name == "" {
		rec.Name = g.Name
	}
	if rec.HeaderImage == "" {
		rec.HeaderImage = g.HeaderImage
	}
	return rec
}
