package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"auroramart/internal/models"
	"auroramart/internal/taxonomy"

	"github.com/shopspring/decimal"
)

// Header aliases accepted for the product catalogue export
var (
	SKUColumns         = []string{"sku", "sku code", "product sku", "product code", "product_code"}
	NameColumns        = []string{"product name", "name"}
	DescriptionColumns = []string{"product description", "description"}
	CategoryColumns    = []string{"product category", "category"}
	StockColumns       = []string{"quantity on hand", "stock"}
	ReorderColumns     = []string{"reorder quantity", "reorder level"}
	PriceColumns       = []string{"unit price", "price"}
	RatingColumns      = []string{"product rating", "rating"}
)

// MissingColumnError reports a required column absent from the dataset
type MissingColumnError struct {
	Candidates []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column, tried: %s", strings.Join(e.Candidates, ", "))
}

// ProductRecord is one parsed catalogue row ready to be upserted
type ProductRecord struct {
	SKU              string
	Name             string
	Description      string
	RawCategory      string
	Category         string
	Price            decimal.Decimal
	Stock            int
	Rating           float64
	ReorderThreshold int
}

// ToModel converts the record into a product model
func (r ProductRecord) ToModel() *models.Product {
	return &models.Product{
		SKU:              r.SKU,
		Name:             r.Name,
		Description:      r.Description,
		Category:         r.Category,
		Price:            r.Price,
		Stock:            r.Stock,
		Rating:           r.Rating,
		ReorderThreshold: r.ReorderThreshold,
	}
}

// ProductRecords parses every row with a SKU. Categories are normalised to
// canonical slugs, with unknown values filed under other. It returns the
// number of rows skipped for lacking a SKU.
func ProductRecords(ds *Dataset, resolver *taxonomy.Resolver) ([]ProductRecord, int, error) {
	skuCol, ok := ds.Column(SKUColumns...)
	if !ok {
		return nil, 0, &MissingColumnError{Candidates: SKUColumns}
	}
	nameCol, ok := ds.Column(NameColumns...)
	if !ok {
		return nil, 0, &MissingColumnError{Candidates: NameColumns}
	}
	descCol, _ := ds.Column(DescriptionColumns...)
	categoryCol, _ := ds.Column(CategoryColumns...)
	stockCol, _ := ds.Column(StockColumns...)
	reorderCol, _ := ds.Column(ReorderColumns...)
	priceCol, _ := ds.Column(PriceColumns...)
	ratingCol, _ := ds.Column(RatingColumns...)

	records := make([]ProductRecord, 0, ds.Len())
	skipped := 0
	for _, row := range ds.Rows {
		sku := ds.Value(row, skuCol)
		if sku == "" {
			skipped++
			continue
		}

		name := ds.Value(row, nameCol)
		if name == "" {
			name = sku
		}

		rawCategory := ds.Value(row, categoryCol)
		category := resolver.ResolveSlug(rawCategory)
		if category == "" {
			category = taxonomy.SlugOther
		}

		reorder := ParseCount(ds.Value(row, reorderCol))
		if reorder == 0 {
			reorder = models.DefaultReorderThreshold
		}

		records = append(records, ProductRecord{
			SKU:              sku,
			Name:             name,
			Description:      ds.Value(row, descCol),
			RawCategory:      rawCategory,
			Category:         category,
			Price:            ParsePrice(ds.Value(row, priceCol)),
			Stock:            ParseCount(ds.Value(row, stockCol)),
			Rating:           ParseRating(ds.Value(row, ratingCol)),
			ReorderThreshold: reorder,
		})
	}

	return records, skipped, nil
}

// ParsePrice accepts "$1,299.00" style values; anything unparseable is zero
func ParsePrice(raw string) decimal.Decimal {
	text := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(raw))
	if text == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(text)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}

// ParseCount parses integral or float counts, clamped at zero
func ParseCount(raw string) int {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0
	}
	if n, err := strconv.Atoi(text); err == nil {
		return max(n, 0)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return max(int(f), 0)
}

// ParseRating parses a 0-5 rating; negative or unparseable values are zero
func ParseRating(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0
	}
	return min(f, models.MaxProductRating)
}
