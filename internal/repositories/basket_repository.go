package repositories

import (
	"fmt"

	"auroramart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BasketRepository implements BasketRepositoryInterface
type BasketRepository struct {
	db *gorm.DB
}

// NewBasketRepository creates a new basket repository
func NewBasketRepository(db *gorm.DB) BasketRepositoryInterface {
	return &BasketRepository{db: db}
}

// CartSKUs returns the SKUs in the customer's cart, most recently added first
func (r *BasketRepository) CartSKUs(customerID uuid.UUID) ([]string, error) {
	var skus []string
	if err := r.db.Model(&models.CartItem{}).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.customer_id = ?", customerID).
		Order("cart_items.created_at DESC").
		Pluck("products.sku", &skus).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart SKUs: %w", err)
	}
	return skus, nil
}

// RecentSnapshots returns up to limit basket snapshots, newest first
func (r *BasketRepository) RecentSnapshots(customerID uuid.UUID, limit int) ([]models.BasketHistory, error) {
	var snapshots []models.BasketHistory
	if err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get basket snapshots: %w", err)
	}
	return snapshots, nil
}

// RecentOrderSKUs returns the SKUs of up to limit order lines, newest orders
// first
func (r *BasketRepository) RecentOrderSKUs(customerID uuid.UUID, limit int) ([]string, error) {
	var skus []string
	if err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.date_ordered DESC").Order("order_items.id ASC").
		Limit(limit).
		Pluck("products.sku", &skus).Error; err != nil {
		return nil, fmt.Errorf("failed to get order SKUs: %w", err)
	}
	return skus, nil
}
