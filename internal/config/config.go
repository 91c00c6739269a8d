package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	SteamAPIKey string `mapstructure:"STEAM_API_KEY"`
	ListenAddr  string `mapstructure:"LISTEN_ADDR"`

	// Ingestion tuning. SyncBudget is the process-lifetime number of games
	// a library sync may enrich inline before overflowing to the queue.
	SyncBudget      int `mapstructure:"SYNC_BUDGET"`
	StaleAfterHours int `mapstructure:"STALE_AFTER_HOURS"`

	// Background queue drain.
	DrainIntervalMinutes int `mapstructure:"DRAIN_INTERVAL_MINUTES"`
	DrainBatchSize       int `mapstructure:"DRAIN_BATCH_SIZE"`

	// Minimum spacing between calls per upstream group. The tag API is
	// drastically slower than the store API; keep these separate.
	StoreDetailIntervalMS int `mapstructure:"STORE_DETAIL_INTERVAL_MS"`
	TagLookupIntervalSec  int `mapstructure:"TAG_LOOKUP_INTERVAL_SEC"`
	PriceRefreshHours     int `mapstructure:"PRICE_REFRESH_HOURS"`
	GenerateRatePerMinute int `mapstructure:"GENERATE_RATE_PER_MINUTE"`
}

var AppConfig *Config

// StaleAfter returns the cache staleness window as a duration.
func (c *Config) StaleAfter() time.Duration {
	return time.Duration(c.StaleAfterHours) * time.Hour
}

// DrainInterval returns the queue drain period as a duration.
func (c *Config) DrainInterval() time.Duration {
	return time.Duration(c.DrainIntervalMinutes) * time.Minute
}

// StoreDetailInterval returns the minimum spacing for store-detail calls.
func (c *Config) StoreDetailInterval() time.Duration {
	return time.Duration(c.StoreDetailIntervalMS) * time.Millisecond
}

// TagLookupInterval returns the minimum spacing for tag-lookup calls.
func (c *Config) TagLookupInterval() time.Duration {
	return time.Duration(c.TagLookupIntervalSec) * time.Second
}

// PriceRefreshInterval returns the period of the lightweight price sweep.
func (c *Config) PriceRefreshInterval() time.Duration {
	return time.Duration(c.PriceRefreshHours) * time.Hour
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("SYNC_BUDGET", 20)
	viper.SetDefault("STALE_AFTER_HOURS", 72)
	viper.SetDefault("DRAIN_INTERVAL_MINUTES", 10)
	viper.SetDefault("DRAIN_BATCH_SIZE", 50)
	viper.SetDefault("STORE_DETAIL_INTERVAL_MS", 400)
	viper.SetDefault("TAG_LOOKUP_INTERVAL_SEC", 60)
	viper.SetDefault("PRICE_REFRESH_HOURS", 24)
	viper.SetDefault("GENERATE_RATE_PER_MINUTE", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
