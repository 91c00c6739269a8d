package ingest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"steamparty/backend/internal/models"
	"steamparty/backend/internal/steam"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a per-test in-memory database with the schema migrated.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ingest%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Game{}, &models.UserGame{}, &models.PendingGame{}))
	return db
}

// fakeCatalog scripts upstream behavior per game ID.
type fakeCatalog struct {
	mu sync.Mutex

	owned   map[string][]steam.OwnedGame
	details map[string]*steam.AppDetails
	tags    map[string]string

	ownedErr   error
	detailErrs map[string]error

	detailCalls int
	tagCalls    int

	// When set, GetAppDetails blocks until released. Used to pin a drain
	// in flight.
	block   chan struct{}
	started chan struct{}
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		owned:      make(map[string][]steam.OwnedGame),
		details:    make(map[string]*steam.AppDetails),
		tags:       make(map[string]string),
		detailErrs: make(map[string]error),
	}
}

func (f *fakeCatalog) GetOwnedGames(ctx context.Context, steamID string) ([]steam.OwnedGame, error) {
	if f.ownedErr != nil {
		return nil, f.ownedErr
	}
	return f.owned[steamID], nil
}

func (f *fakeCatalog) GetAppDetails(ctx context.Context, appID string) (*steam.AppDetails, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	if err, ok := f.detailErrs[appID]; ok {
		return nil, err
	}
	d, ok := f.details[appID]
	if !ok {
		return nil, steam.ErrNotFound
	}
	return d, nil
}

func (f *fakeCatalog) GetTags(ctx context.Context, appID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tagCalls++
	return f.tags[appID], nil
}

func ownedGame(appID, name string) steam.OwnedGame {
	return steam.OwnedGame{
		AppID:       appID,
		Name:        name,
		HeaderImage: "https://cdn.example.com/" + appID + "/header.jpg",
		StoreURL:    "https://store.example.com/app/" + appID,
	}
}

func multiplayerDetails(name string) *steam.AppDetails {
	return &steam.AppDetails{
		Name:          name,
		Genre:         "Single-player,Co-op",
		Description:   "Play together.",
		HeaderImage:   "https://img.example.com/" + name + ".jpg",
		Price:         9.99,
		InitialPrice:  19.99,
		IsMultiplayer: true,
	}
}
