package repositories

import (
	"fmt"
	"time"

	"auroramart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecommendationRepository implements RecommendationRepositoryInterface
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *gorm.DB) RecommendationRepositoryInterface {
	return &RecommendationRepository{db: db}
}

// ListForCustomer returns the stored rows for a customer with their products,
// newest first
func (r *RecommendationRepository) ListForCustomer(customerID uuid.UUID) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := r.db.Preload("Product").
		Where("customer_id = ?", customerID).
		Order("generated_at DESC").Order("id ASC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to get recommendations for customer: %w", err)
	}
	return recs, nil
}

// ReplacePrecomputed swaps the customer's precomputed rows for productIDs.
// Rows written by merchandisers are left untouched.
func (r *RecommendationRepository) ReplacePrecomputed(customerID uuid.UUID, source string, productIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ? AND (reason = ? OR reason LIKE ?)",
			customerID, models.ReasonPrecomputed, models.ReasonPrecomputed+":%").
			Delete(&models.Recommendation{}).Error; err != nil {
			return fmt.Errorf("failed to clear precomputed recommendations: %w", err)
		}

		if len(productIDs) == 0 {
			return nil
		}

		// Stagger timestamps so list order matches rank order
		now := time.Now()
		reason := models.PrecomputedReason(source)
		recs := make([]models.Recommendation, 0, len(productIDs))
		for i, productID := range productIDs {
			recs = append(recs, models.Recommendation{
				CustomerID:  customerID,
				ProductID:   productID,
				Reason:      reason,
				GeneratedAt: now.Add(-time.Duration(i) * time.Millisecond),
			})
		}

		if err := tx.Create(&recs).Error; err != nil {
			return fmt.Errorf("failed to store precomputed recommendations: %w", err)
		}
		return nil
	})
}

func (r *RecommendationRepository) DeleteForCustomer(customerID uuid.UUID) error {
	if err := r.db.Where("customer_id = ?", customerID).Delete(&models.Recommendation{}).Error; err != nil {
		return fmt.Errorf("failed to delete recommendations: %w", err)
	}
	return nil
}
