package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Security       SecurityConfig
	Recommendation RecommendationConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	MigrationsPath  string
	SeedsPath       string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	HSTSMaxAge         time.Duration
	CatalogCacheMaxAge time.Duration
}

// RecommendationConfig controls where model artifacts are found and how the
// recommendation cascade is tuned.
type RecommendationConfig struct {
	ArtifactDirs       []string
	ClassifierFile     string
	RulesFile          string
	CatalogPath        string
	AliasFile          string
	DefaultLimit       int
	MaxLimit           int
	CompleteSetLimit   int
	RichnessThreshold  int
	BasketCap          int
	RulesCandidateMult int

	PrecomputeEnabled  bool
	PrecomputeInterval time.Duration
	PrecomputeWorkers  int
	PrecomputeBatch    int
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "auroramart.db"),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("DB_SEEDS_PATH", "db/seeds"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "aurora_user"),
			Password:        getEnv("DB_PASSWORD", "aurora_password"),
			Name:            getEnv("DB_NAME", "auroramart"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			HSTSMaxAge:         getDurationEnv("HSTS_MAX_AGE", 365*24*time.Hour),
			CatalogCacheMaxAge: getDurationEnv("CATALOG_CACHE_MAX_AGE", 5*time.Minute),
		},
		Recommendation: RecommendationConfig{
			ArtifactDirs:       getListEnv("ML_ARTIFACT_DIRS", []string{"models", "mlmodels"}),
			ClassifierFile:     getEnv("ML_CLASSIFIER_FILE", "b2c_customers_100.json"),
			RulesFile:          getEnv("ML_RULES_FILE", "b2c_products_500_transactions_50k.json"),
			CatalogPath:        getEnv("CATALOG_PATH", "data/b2c_products_500.csv"),
			AliasFile:          getEnv("CATEGORY_ALIAS_FILE", ""),
			DefaultLimit:       getIntEnv("RECOMMENDATION_DEFAULT_LIMIT", 8),
			MaxLimit:           getIntEnv("RECOMMENDATION_MAX_LIMIT", 50),
			CompleteSetLimit:   getIntEnv("RECOMMENDATION_COMPLETE_SET_LIMIT", 4),
			RichnessThreshold:  getIntEnv("RECOMMENDATION_RICHNESS_THRESHOLD", 3),
			BasketCap:          getIntEnv("RECOMMENDATION_BASKET_CAP", 50),
			RulesCandidateMult: getIntEnv("RECOMMENDATION_RULES_CANDIDATE_MULT", 2),
			PrecomputeEnabled:  getBoolEnv("RECOMMENDATION_PRECOMPUTE_ENABLED", false),
			PrecomputeInterval: getDurationEnv("RECOMMENDATION_PRECOMPUTE_INTERVAL", 5*time.Minute),
			PrecomputeWorkers:  getIntEnv("RECOMMENDATION_PRECOMPUTE_WORKERS", 4),
			PrecomputeBatch:    getIntEnv("RECOMMENDATION_PRECOMPUTE_BATCH", 100),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated variable, dropping blank entries
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	origins := getListEnv("CORS_ALLOW_ORIGINS", nil)
	if len(origins) == 0 {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	return origins
}
