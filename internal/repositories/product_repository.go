package repositories

import (
	"errors"
	"fmt"
	"strings"

	"auroramart/internal/models"
	"auroramart/internal/taxonomy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProductNotFound = errors.New("product not found")

const upsertBatchSize = 100

// ProductRepository implements ProductRepositoryInterface
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepositoryInterface {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("UPPER(sku) = ?", strings.ToUpper(strings.TrimSpace(sku))).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by SKU: %w", err)
	}
	return &product, nil
}

// GetBySKUs returns the products for skus in the order the SKUs were given.
// Unknown SKUs are skipped and matching is case-insensitive.
func (r *ProductRepository) GetBySKUs(skus []string) ([]models.Product, error) {
	keys := make([]string, 0, len(skus))
	for _, sku := range skus {
		if k := strings.ToUpper(strings.TrimSpace(sku)); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return []models.Product{}, nil
	}

	var found []models.Product
	if err := r.db.Where("UPPER(sku) IN ?", keys).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by SKU: %w", err)
	}

	bySKU := make(map[string]models.Product, len(found))
	for _, p := range found {
		bySKU[strings.ToUpper(p.SKU)] = p
	}

	products := make([]models.Product, 0, len(found))
	seen := make(map[string]struct{}, len(found))
	for _, k := range keys {
		p, ok := bySKU[k]
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		products = append(products, p)
	}
	return products, nil
}

// widen adds every distinct stored spelling the predicate accepts, so rows
// written under separators or casings outside the alias table still match.
func (r *ProductRepository) widen(predicate taxonomy.Predicate) (taxonomy.Predicate, error) {
	if !predicate.Widens() {
		return predicate, nil
	}

	var stored []string
	if err := r.db.Model(&models.Product{}).Distinct("category").Pluck("category", &stored).Error; err != nil {
		return predicate, fmt.Errorf("failed to list stored categories: %w", err)
	}
	return predicate.Expand(stored), nil
}

func categoryScope(predicate taxonomy.Predicate) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(TRIM(category)) IN ?", predicate.Values)
	}
}

func inStockScope(db *gorm.DB) *gorm.DB {
	return db.Where("stock > ?", 0)
}

// FindInStockByCategory returns in-stock products whose stored category is any
// spelling covered by predicate, most stocked first.
func (r *ProductRepository) FindInStockByCategory(predicate taxonomy.Predicate, limit int) ([]models.Product, error) {
	if predicate.Empty() || limit <= 0 {
		return []models.Product{}, nil
	}

	predicate, err := r.widen(predicate)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := r.db.Scopes(categoryScope(predicate), inStockScope).
		Order("stock DESC").Order("sku ASC").
		Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get in-stock products for category %s: %w", predicate.Slug, err)
	}
	return products, nil
}

// ListByCategory pages through a category for browsing, in-stock items first
func (r *ProductRepository) ListByCategory(predicate taxonomy.Predicate, offset, limit int) ([]models.Product, int64, error) {
	if predicate.Empty() {
		return []models.Product{}, 0, nil
	}

	predicate, err := r.widen(predicate)
	if err != nil {
		return nil, 0, err
	}

	var products []models.Product
	var total int64

	query := r.db.Model(&models.Product{}).Scopes(categoryScope(predicate))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products in category: %w", err)
	}

	if err := query.Order("CASE WHEN stock > 0 THEN 0 ELSE 1 END").Order("name ASC").Order("sku ASC").
		Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products in category: %w", err)
	}
	return products, total, nil
}

// TopInStock returns the most stocked products regardless of category
func (r *ProductRepository) TopInStock(limit int) ([]models.Product, error) {
	if limit <= 0 {
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := r.db.Scopes(inStockScope).
		Order("stock DESC").Order("sku ASC").
		Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get top in-stock products: %w", err)
	}
	return products, nil
}

// Upsert inserts products, updating the catalogue columns of existing rows
// matched by SKU. It returns the number of rows written.
func (r *ProductRepository) Upsert(products []models.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	for i := range products {
		if err := products[i].Validate(); err != nil {
			return 0, fmt.Errorf("invalid product %q: %w", products[i].SKU, err)
		}
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "category", "price", "stock", "rating", "reorder_threshold", "updated_at",
		}),
	}).CreateInBatches(products, upsertBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to upsert products: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CategoryCounts groups products by their stored category value
func (r *ProductRepository) CategoryCounts() ([]CategoryCount, error) {
	var rows []struct {
		Category string
		Products int64
		InStock  int64
	}

	if err := r.db.Model(&models.Product{}).
		Select("category, COUNT(*) AS products, COUNT(CASE WHEN stock > 0 THEN 1 END) AS in_stock").
		Group("category").Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count products by category: %w", err)
	}

	counts := make([]CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, CategoryCount{Category: row.Category, Products: row.Products, InStock: row.InStock})
	}
	return counts, nil
}
