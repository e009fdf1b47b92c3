package repositories

import (
	"auroramart/internal/models"
	"auroramart/internal/taxonomy"

	"github.com/google/uuid"
)

// CategoryCount is the number of products stored under one raw category value
type CategoryCount struct {
	Category string
	Products int64
	InStock  int64
}

// ProductRepositoryInterface defines the contract for catalogue queries. Every
// category filter takes a taxonomy predicate so rows written under legacy
// category spellings stay reachable.
type ProductRepositoryInterface interface {
	GetBySKU(sku string) (*models.Product, error)
	GetBySKUs(skus []string) ([]models.Product, error)
	FindInStockByCategory(predicate taxonomy.Predicate, limit int) ([]models.Product, error)
	ListByCategory(predicate taxonomy.Predicate, offset, limit int) ([]models.Product, int64, error)
	TopInStock(limit int) ([]models.Product, error)
	Upsert(products []models.Product) (int64, error)
	CategoryCounts() ([]CategoryCount, error)
}

// CustomerRepositoryInterface defines the contract for customer profile reads
type CustomerRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	ListIDs(offset, limit int) ([]uuid.UUID, error)
}

// RecommendationRepositoryInterface defines the contract for stored
// per-customer recommendations
type RecommendationRepositoryInterface interface {
	ListForCustomer(customerID uuid.UUID) ([]models.Recommendation, error)
	ReplacePrecomputed(customerID uuid.UUID, source string, productIDs []uuid.UUID) error
	DeleteForCustomer(customerID uuid.UUID) error
}

// BasketRepositoryInterface defines the contract for the basket signal
// sources: the live cart, checkout snapshots and past orders
type BasketRepositoryInterface interface {
	CartSKUs(customerID uuid.UUID) ([]string, error)
	RecentSnapshots(customerID uuid.UUID, limit int) ([]models.BasketHistory, error)
	RecentOrderSKUs(customerID uuid.UUID, limit int) ([]string, error)
}
