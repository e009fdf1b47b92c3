package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auroramart/internal/models"
	"auroramart/internal/repositories"
	"auroramart/internal/taxonomy"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
)

// CategorySummary is a canonical category with the catalogue counts of every
// stored spelling that resolves to it.
type CategorySummary struct {
	Slug           string   `json:"slug"`
	Label          string   `json:"label"`
	Products       int64    `json:"products"`
	InStock        int64    `json:"in_stock"`
	StoredSpelling []string `json:"stored_spellings,omitempty"`
}

// CategoryListing is one page of a category
type CategoryListing struct {
	Category taxonomy.Category `json:"category"`
	Known    bool              `json:"known"`
	Products []models.Product  `json:"products"`
	Total    int64             `json:"total"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

type categoryService struct {
	products repositories.ProductRepositoryInterface
	resolver *taxonomy.Resolver
	maxLimit int
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(products repositories.ProductRepositoryInterface, resolver *taxonomy.Resolver, maxLimit int) CategoryServiceInterface {
	if resolver == nil {
		resolver = taxonomy.NewResolver(nil)
	}
	if maxLimit <= 0 {
		maxLimit = DefaultRecommendationOptions().MaxLimit
	}
	return &categoryService{
		products: products,
		resolver: resolver,
		maxLimit: maxLimit,
	}
}

// ListCategories returns the whole canonical taxonomy in display order.
// Stored values that resolve nowhere are counted under other.
func (s *categoryService) ListCategories(ctx context.Context) ([]CategorySummary, error) {
	counts, err := s.products.CategoryCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := s.resolver.Categories()
	summaries := make([]CategorySummary, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		summaries[i] = CategorySummary{Slug: c.Slug, Label: c.Label}
		index[c.Slug] = i
	}

	for _, count := range counts {
		slug := s.resolver.ResolveSlug(count.Category)
		i, ok := index[slug]
		if !ok {
			i, ok = index[taxonomy.SlugOther]
			if !ok {
				continue
			}
		}
		summaries[i].Products += count.Products
		summaries[i].InStock += count.InStock
		summaries[i].StoredSpelling = append(summaries[i].StoredSpelling, count.Category)
	}
	return summaries, nil
}

// BrowseCategory pages through every product stored under any spelling of
// raw. Unknown categories are listed by their literal value.
func (s *categoryService) BrowseCategory(ctx context.Context, raw string, offset, limit int) (*CategoryListing, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInvalidCategory
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	category, known := s.resolver.Resolve(raw)
	if !known {
		category = taxonomy.Category{Slug: strings.TrimSpace(raw), Label: s.resolver.DisplayLabel(raw)}
	}

	products, total, err := s.products.ListByCategory(s.resolver.MatchPredicate(raw), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to browse category %s: %w", category.Slug, err)
	}

	return &CategoryListing{
		Category: category,
		Known:    known,
		Products: products,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	}, nil
}
