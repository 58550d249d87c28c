package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Rate cache drivers understood by RATE_CACHE_DRIVER.
const (
	RateCacheMemory = "memory"
	RateCacheSQLite = "sqlite"
	RateCacheRedis  = "redis"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Session tokens are issued by the hosted auth backend; we only verify them.
	JWTSecret string
	JWTIssuer string
	AdminRole string

	// Exchange rates
	RatesAPIURL            string
	RatesCacheTTL          time.Duration
	RatesHTTPTimeout       time.Duration
	RateCacheDriver        string
	RateCacheSQLitePath    string
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
	PaymentsSourceCurrency string

	PosthogAPIKey      string
	CORSAllowedOrigins []string
	ConvertRateLimit   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("ADMIN_ROLE", "admin")
	viper.SetDefault("RATES_API_URL", "https://api.exchangerate-api.com/v4")
	viper.SetDefault("RATES_CACHE_TTL", "1h")
	viper.SetDefault("RATES_HTTP_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_DRIVER", RateCacheSQLite)
	viper.SetDefault("RATE_CACHE_SQLITE_PATH", "data/rates_cache.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PAYMENTS_SOURCE_CURRENCY", "USD")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("CONVERT_RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Portal and admin routes will reject every request.")
	}

	cfg.RatesCacheTTL = parseDuration("RATES_CACHE_TTL", time.Hour)
	cfg.RatesHTTPTimeout = parseDuration("RATES_HTTP_TIMEOUT", 10*time.Second)

	cfg.RateCacheDriver = strings.ToLower(viper.GetString("RATE_CACHE_DRIVER"))
	switch cfg.RateCacheDriver {
	case RateCacheMemory, RateCacheSQLite, RateCacheRedis:
	default:
		log.Printf("Warning: Invalid value for RATE_CACHE_DRIVER ('%s'). Defaulting to %s.\n", cfg.RateCacheDriver, RateCacheMemory)
		cfg.RateCacheDriver = RateCacheMemory
	}

	cfg.PaymentsSourceCurrency = strings.ToUpper(viper.GetString("PAYMENTS_SOURCE_CURRENCY"))
	if len(cfg.PaymentsSourceCurrency) != 3 {
		log.Printf("Warning: Invalid value for PAYMENTS_SOURCE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.PaymentsSourceCurrency)
		cfg.PaymentsSourceCurrency = "USD"
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AdminRole = viper.GetString("ADMIN_ROLE")
	cfg.RatesAPIURL = strings.TrimRight(viper.GetString("RATES_API_URL"), "/")
	cfg.RateCacheSQLitePath = viper.GetString("RATE_CACHE_SQLITE_PATH")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.ConvertRateLimit = viper.GetString("CONVERT_RATE_LIMIT")

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
