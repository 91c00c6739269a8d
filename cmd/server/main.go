package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"steamparty/backend/internal/auth"
	"steamparty/backend/internal/config"
	"steamparty/backend/internal/database"
	"steamparty/backend/internal/handler"
	"steamparty/backend/internal/hub"
	"steamparty/backend/internal/ingest"
	"steamparty/backend/internal/logger"
	"steamparty/backend/internal/match"
	"steamparty/backend/internal/middleware"
	"steamparty/backend/internal/room"
	"steamparty/backend/internal/steam"
	"steamparty/backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	// Swagger imports
	_ "steamparty/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Steamparty API
// @version         1.0
// @description     Matches a room of players by intersecting their Steam libraries.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to the database
	database.Connect(cfg.DatabaseURL)

	// Ingestion subsystem: rate-limited catalog client, cache, queue,
	// sync service and the background workers draining the queue and
	// sweeping prices.
	catalog := steam.NewClient(cfg.SteamAPIKey, steam.SystemClock(), zlog,
		cfg.StoreDetailInterval(), cfg.TagLookupInterval())
	games := store.NewGameStore(database.DB, cfg.StaleAfter())
	assocs := store.NewAssociationStore(database.DB)
	queue := store.NewQueue(database.DB)
	syncer := ingest.NewSyncer(catalog, games, assocs, queue, cfg.SyncBudget, zlog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ingest.NewWorker(catalog, games, queue, cfg.DrainInterval(), cfg.DrainBatchSize, zlog).Start(ctx)
	ingest.NewPriceRefresher(catalog, games, cfg.PriceRefreshInterval(), zlog).Start(ctx)

	// Session layer: in-memory rooms plus the per-room event stream.
	registry := room.NewRegistry(time.Now().UnixNano())
	events := hub.NewHub()
	engine := match.NewEngine(games)

	roomHandler := handler.NewRoomHandler(registry, events, zlog)
	listHandler := handler.NewListHandler(syncer, engine, registry, events, zlog)
	gamesHandler := handler.NewGamesHandler(games)
	generateLimiter := middleware.NewKeyedLimiter(float64(cfg.GenerateRatePerMinute)/60.0, 2)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/session", handler.CreateSession)

		// Game cache routes (protected)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.GET("", gamesHandler.GetGames)
		}

		// Room routes (protected)
		roomRoutes := apiV1.Group("/rooms")
		roomRoutes.Use(auth.AuthMiddleware())
		{
			roomRoutes.POST("", roomHandler.CreateRoom)
			roomRoutes.POST("/:number/join", roomHandler.JoinRoom)
			roomRoutes.POST("/:number/leave", roomHandler.LeaveRoom)
			roomRoutes.GET("/:number/events", roomHandler.StreamEvents)
			roomRoutes.POST("/:number/generate", middleware.RateLimit(generateLimiter), listHandler.Generate)
		}
	}

	zlog.Info("server starting",
		zap.String("addr", cfg.ListenAddr),
		zap.Int("sync_budget", cfg.SyncBudget),
		zap.Duration("drain_interval", cfg.DrainInterval()),
	)
	log.Fatal(router.Run(cfg.ListenAddr))
}
