package ingest

import (
	"context"
	"testing"
	"time"

	"steamparty/backend/internal/models"
	"steamparty/backend/internal/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorkerDrainsQueueAndRemovesProcessedEntries(t *testing.T) {
	f := newSyncFixture(t)
	f.catalog.details["620"] = multiplayerDetails("Portal 2")
	f.catalog.tags["620"] = "Puzzle,Co-op"

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.queue.Enqueue("620", base))

	w := NewWorker(f.catalog, f.games, f.queue, time.Minute, 50, zap.NewNop())
	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	game, err := f.games.Get("620")
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Puzzle,Co-op", game.Tags)
	assert.True(t, game.IsMultiplayer)

	queued, err := f.queue.Len()
	require.NoError(t, err)
	assert.Zero(t, queued)
}

func TestWorkerLeavesFailedEntriesQueued(t *testing.T) {
	f := newSyncFixture(t)
	f.catalog.details["620"] = multiplayerDetails("Portal 2")
	f.catalog.detailErrs["550"] = steam.ErrUnavailable

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.queue.Enqueue("550", base))
	require.NoError(t, f.queue.Enqueue("620", base.Add(time.Minute)))

	w := NewWorker(f.catalog, f.games, f.queue, time.Minute, 50, zap.NewNop())
	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The failing game stays queued for the next cycle.
	ids, err := f.queue.Drain(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"550"}, ids)
}

func TestWorkerEnrichesWithoutTagsWhenTagLookupFails(t *testing.T) {
	f := newSyncFixture(t)
	f.catalog.details["620"] = multiplayerDetails("Portal 2")
	// fakeCatalog returns "" for unknown tag IDs without erroring; force the
	// missing-tags path by leaving tags unset.

	require.NoError(t, f.queue.Enqueue("620", time.Now()))

	w := NewWorker(f.catalog, f.games, f.queue, time.Minute, 50, zap.NewNop())
	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	game, err := f.games.Get("620")
	require.NoError(t, err)
	assert.Empty(t, game.Tags)
	assert.Equal(t, "Portal 2", game.Name)
}

func TestWorkerNeverOverlapsDrains(t *testing.T) {
	f := newSyncFixture(t)
	f.catalog.details["620"] = multiplayerDetails("Portal 2")
	f.catalog.block = make(chan struct{})
	f.catalog.started = make(chan struct{}, 1)

	require.NoError(t, f.queue.Enqueue("620", time.Now()))

	w := NewWorker(f.catalog, f.games, f.queue, time.Minute, 50, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := w.RunOnce(context.Background())
		assert.NoError(t, err)
	}()

	// Wait until the first drain is pinned mid-batch.
	<-f.catalog.started

	// A second drain must bail out immediately instead of doubling up.
	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	close(f.catalog.block)
	<-done
}

func TestPriceRefresherSweepsAllKnownGames(t *testing.T) {
	f := newSyncFixture(t)

	require.NoError(t, f.games.Upsert(&models.Game{
		GameID: "620", Name: "Portal 2", Tags: "Puzzle", Price: 19.99,
	}))
	require.NoError(t, f.games.Upsert(&models.Game{
		GameID: "550", Name: "Left 4 Dead 2", Price: 19.99,
	}))

	f.catalog.details["620"] = &steam.AppDetails{Name: "Portal 2", Price: 4.99, InitialPrice: 19.99}
	f.catalog.detailErrs["550"] = steam.ErrUnavailable

	p := NewPriceRefresher(f.catalog, f.games, time.Hour, zap.NewNop())
	n, err := p.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	game, err := f.games.Get("620")
	require.NoError(t, err)
	assert.Equal(t, 4.99, game.Price)
	assert.Equal(t, "Puzzle", game.Tags)

	// The unreachable game keeps its old price.
	game, err = f.games.Get("550")
	require.NoError(t, err)
	assert.Equal(t, 19.99, game.Price)
}
