package database

import (
	"fmt"
	"testing"
	"time"

	"auroramart/internal/config"
	"auroramart/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"recommendations",
	"basket_histories",
	"order_items",
	"orders",
	"cart_items",
	"customers",
	"products",
}

// SetupTestDB opens a migrated in-memory sqlite database. The pool is pinned
// to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestProduct(t *testing.T, db *DB, sku, category string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		SKU:      sku,
		Name:     "Product " + sku,
		Category: category,
		Price:    decimal.NewFromFloat(19.90),
		Stock:    stock,
	}

	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}

	return product
}

func CreateTestCustomer(t *testing.T, db *DB, email string) *models.Customer {
	t.Helper()

	customer := &models.Customer{Email: email}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestCartItem(t *testing.T, db *DB, customerID uuid.UUID, product *models.Product, addedAt time.Time) *models.CartItem {
	t.Helper()

	item := &models.CartItem{CustomerID: customerID, ProductID: product.ID, Quantity: 1, CreatedAt: addedAt}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test cart item: %v", err)
	}

	return item
}

func CreateTestSnapshot(t *testing.T, db *DB, customerID uuid.UUID, takenAt time.Time, skus ...string) *models.BasketHistory {
	t.Helper()

	snapshot := &models.BasketHistory{CustomerID: customerID, Items: models.SKUList(skus), CreatedAt: takenAt}

	if err := db.Create(snapshot).Error; err != nil {
		t.Fatalf("failed to create test basket snapshot: %v", err)
	}

	return snapshot
}

// CreateTestOrder stores one order with a single line per product
func CreateTestOrder(t *testing.T, db *DB, customerID uuid.UUID, orderedAt time.Time, products ...*models.Product) *models.Order {
	t.Helper()

	order := &models.Order{CustomerID: customerID, DateOrdered: orderedAt}
	for _, p := range products {
		order.Items = append(order.Items, models.OrderItem{ProductID: p.ID, Quantity: 1, Price: p.Price})
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	return order
}

func CreateTestRecommendation(t *testing.T, db *DB, customerID uuid.UUID, product *models.Product, reason string, generatedAt time.Time) *models.Recommendation {
	t.Helper()

	rec := &models.Recommendation{CustomerID: customerID, ProductID: product.ID, Reason: reason, GeneratedAt: generatedAt}

	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test recommendation: %v", err)
	}

	return rec
}
