package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIBase   = "https://api.steampowered.com"
	defaultStoreBase = "https://store.steampowered.com"
	defaultSpyBase   = "https://steamspy.com"
)

// Client talks to the three Steam-side catalog endpoints through a shared
// rate limiter: the player service (owned games), the store front
// (per-app detail) and SteamSpy (community tags).
type Client struct {
	limiter *Limiter
	log     *zap.Logger
	apiKey  string

	// Overridable in tests.
	APIBase   string
	StoreBase string
	SpyBase   string
}

// NewClient builds a catalog client. storeInterval and tagInterval are the
// minimum spacings for the store-detail and tag-lookup groups.
func NewClient(apiKey string, clock Clock, log *zap.Logger, storeInterval, tagInterval time.Duration) *Client {
	return &Client{
		limiter: NewLimiter(nil, clock, log, map[string]time.Duration{
			GroupStoreDetail: storeInterval,
			GroupTagLookup:   tagInterval,
		}),
		log:       log,
		apiKey:    apiKey,
		APIBase:   defaultAPIBase,
		StoreBase: defaultStoreBase,
		SpyBase:   defaultSpyBase,
	}
}

// OwnedGame is one entry of a user's library as reported by the player
// service, with the store URL and header image derived from the app ID.
type OwnedGame struct {
	AppID       string
	Name        string
	HeaderImage string
	StoreURL    string
}

// AppDetails is the enriched per-app record from the store front. Price and
// InitialPrice are in the store currency's major unit; a missing price block
// (free or unlisted apps) yields zeros, missing categories yield
// "Single-player".
type AppDetails struct {
	Name          string
	Genre         string
	Description   string
	HeaderImage   string
	Price         float64
	InitialPrice  float64
	IsMultiplayer bool
}

type ownedGamesEnvelope struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID int    `json:"appid"`
			Name  string `json:"name"`
		} `json:"games"`
	} `json:"response"`
}

type appDetailsEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Name             string `json:"name"`
		ShortDescription string `json:"short_description"`
		HeaderImage      string `json:"header_image"`
		PriceOverview    *struct {
			Initial int `json:"initial"`
			Final   int `json:"final"`
		} `json:"price_overview"`
		Categories []struct {
			Description string `json:"description"`
		} `json:"categories"`
	} `json:"data"`
}

type spyEnvelope struct {
	Tags map[string]int `json:"tags"`
}

// GetOwnedGames fetches a user's library. The call rides the store-detail
// group; it is cheap but there is no reason to let it race app detail calls.
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamid", steamID)
	q.Set("include_appinfo", "1")
	q.Set("format", "json")

	var env ownedGamesEnvelope
	if err := c.getJSON(ctx, GroupStoreDetail, c.APIBase+"/IPlayerService/GetOwnedGames/v1/?"+q.Encode(), &env); err != nil {
		return nil, err
	}

	games := make([]OwnedGame, 0, len(env.Response.Games))
	for _, g := range env.Response.Games {
		appID := fmt.Sprintf("%d", g.AppID)
		games = append(games, OwnedGame{
			AppID:       appID,
			Name:        g.Name,
			HeaderImage: fmt.Sprintf("%s/steam/apps/%s/header.jpg", "https://cdn.cloudflare.steamstatic.com", appID),
			StoreURL:    fmt.Sprintf("%s/app/%s", defaultStoreBase, appID),
		})
	}
	return games, nil
}

// GetAppDetails fetches the store-front record for one app.
func (c *Client) GetAppDetails(ctx context.Context, appID string) (*AppDetails, error) {
	q := url.Values{}
	q.Set("appids", appID)
	q.Set("cc", "us")

	var env map[string]appDetailsEnvelope
	if err := c.getJSON(ctx, GroupStoreDetail, c.StoreBase+"/api/appdetails?"+q.Encode(), &env); err != nil {
		return nil, err
	}

	entry, ok := env[appID]
	if !ok || !entry.Success {
		return nil, ErrNotFound
	}

	d := &AppDetails{
		Name:        entry.Data.Name,
		Description: entry.Data.ShortDescription,
		HeaderImage: entry.Data.HeaderImage,
	}
	if p := entry.Data.PriceOverview; p != nil {
		d.Price = float64(p.Final) / 100
		d.InitialPrice = float64(p.Initial) / 100
	}
	if len(entry.Data.Categories) == 0 {
		d.Genre = "Single-player"
	} else {
		names := make([]string, 0, len(entry.Data.Categories))
		for _, cat := range entry.Data.Categories {
			names = append(names, cat.Description)
		}
		d.Genre = strings.Join(names, ",")
	}
	d.IsMultiplayer = IsMultiplayerGenre(d.Genre)
	return d, nil
}

// GetTags fetches the community tags for one app, comma-joined. This rides
// the tag-lookup group, which is far too slow for request-path use; callers
// treat tags as optional.
func (c *Client) GetTags(ctx context.Context, appID string) (string, error) {
	var env spyEnvelope
	u := c.SpyBase + "/api.php?request=appdetails&appid=" + url.QueryEscape(appID)
	if err := c.getJSON(ctx, GroupTagLookup, u, &env); err != nil {
		return "", err
	}

	tags := make([]string, 0, len(env.Tags))
	for name := range env.Tags {
		tags = append(tags, name)
	}
	return strings.Join(tags, ","), nil
}

// IsMultiplayerGenre reports whether a comma-joined category string carries
// any of the markers Steam uses for games playable together.
func IsMultiplayerGenre(genre string) bool {
	for _, marker := range []string{"Multi-player", "Multiplayer", "Co-op", "PvP"} {
		if strings.Contains(genre, marker) {
			return true
		}
	}
	return false
}

func (c *Client) getJSON(ctx context.Context, groupName, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.limiter.Do(ctx, groupName, req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("upstream call failed",
			zap.String("group", groupName),
			zap.Int("status", resp.StatusCode),
		)
		return ErrUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
