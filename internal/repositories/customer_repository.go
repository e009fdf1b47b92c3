package repositories

import (
	"errors"
	"fmt"
	"strings"

	"auroramart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository implements CustomerRepositoryInterface
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{ID: id}
	if err := r.db.First(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// GetByEmail looks a customer up by email, ignoring case and surrounding space
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return &customer, nil
}

// ListIDs pages through customer IDs in creation order
func (r *CustomerRepository) ListIDs(offset, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.Customer{}).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer IDs: %w", err)
	}
	return ids, nil
}
