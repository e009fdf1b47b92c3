package database

import (
	"fmt"
	"log/slog"
	"time"

	"auroramart/internal/config"
	"auroramart/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// Open picks the gorm dialector for the configured driver
func Open(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.SQLitePath)
	}
	return postgres.Open(cfg.DSN())
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(Open(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxConns := cfg.MaxConnections
	if cfg.Driver == config.DriverSQLite {
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.BasketHistory{},
		&models.Recommendation{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the expression indexes gorm tags cannot describe. The
// category index backs the alias-aware category filters.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_lower ON products(LOWER(TRIM(category)))",
		"CREATE INDEX IF NOT EXISTS idx_products_sku_upper ON products(UPPER(sku))",
		"CREATE INDEX IF NOT EXISTS idx_products_stock_sku ON products(stock DESC, sku)",
		"CREATE INDEX IF NOT EXISTS idx_customers_email_lower ON customers(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_recommendations_customer_generated ON recommendations(customer_id, generated_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_basket_histories_customer_created ON basket_histories(customer_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_date ON orders(customer_id, date_ordered DESC)",
	}

	failed := 0
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			failed++
			slog.Warn("Failed to create index",
				slog.String("event_type", "index_create_failed"),
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d indexes could not be created", failed, len(queries))
	}
	return nil
}

// Initialize creates and configures the database connection. SQL migrations
// run when AUTO_MIGRATE is enabled; otherwise, or if they fail, the schema is
// brought up with gorm AutoMigrate.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.Driver != config.DriverSQLite {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := NewMigrationRunnerWithPaths(sqlDB, cfg.Database.MigrationsPath, cfg.Database.SeedsPath)
		ran, err := runner.RunIfEnabled()
		if err != nil {
			slog.Warn("Migration runner failed, falling back to AutoMigrate",
				slog.String("event_type", "migration_fallback"),
				slog.String("error", err.Error()),
			)
		}
		migrated = ran && err == nil
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Some indexes were not created", slog.String("error", err.Error()))
	}

	slog.Info("Database initialized",
		slog.String("event_type", "database_initialized"),
		slog.String("driver", cfg.Database.Driver),
	)

	return db, nil
}
