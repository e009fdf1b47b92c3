package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"auroramart/internal/catalog"
	"auroramart/internal/models"
	"auroramart/internal/repositories"
	"auroramart/internal/taxonomy"

	"github.com/schollz/progressbar/v3"
)

const seedChunkSize = 100

// SeedReport summarises one catalogue import
type SeedReport struct {
	Path                 string   `json:"path"`
	Rows                 int      `json:"rows"`
	Written              int64    `json:"written"`
	Skipped              int      `json:"skipped"`
	Duplicates           int      `json:"duplicates"`
	UnresolvedCategories []string `json:"unresolved_categories,omitempty"`
}

// CatalogSeeder imports the product catalogue CSV, normalising every
// category to its canonical slug.
type CatalogSeeder struct {
	products repositories.ProductRepositoryInterface
	resolver *taxonomy.Resolver
	logger   RecommendationLoggerInterface
	metrics  MetricsRecorderInterface
}

func NewCatalogSeeder(products repositories.ProductRepositoryInterface, resolver *taxonomy.Resolver, logger RecommendationLoggerInterface, metrics MetricsRecorderInterface) CatalogSeederInterface {
	if resolver == nil {
		resolver = taxonomy.NewResolver(nil)
	}
	return &CatalogSeeder{
		products: products,
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Seed upserts the catalogue at path in chunks. Progress is drawn on
// progress when it is not nil. Rows repeating an earlier SKU are ignored.
func (s *CatalogSeeder) Seed(ctx context.Context, path string, progress io.Writer) (*SeedReport, error) {
	start := time.Now()

	ds, err := catalog.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	records, skipped, err := catalog.ProductRecords(ds, s.resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	report := &SeedReport{Path: path, Rows: ds.Len(), Skipped: skipped}

	unresolved := make(map[string]struct{})
	seen := make(map[string]struct{}, len(records))
	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		key := strings.ToUpper(rec.SKU)
		if _, dup := seen[key]; dup {
			report.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		if raw := strings.TrimSpace(rec.RawCategory); raw != "" && s.resolver.ResolveSlug(raw) == "" {
			unresolved[raw] = struct{}{}
		}
		products = append(products, *rec.ToModel())
	}
	for raw := range unresolved {
		report.UnresolvedCategories = append(report.UnresolvedCategories, raw)
	}
	sort.Strings(report.UnresolvedCategories)

	bar := newSeedProgress(len(products), progress)
	for i := 0; i < len(products); i += seedChunkSize {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		end := min(i+seedChunkSize, len(products))
		written, err := s.products.Upsert(products[i:end])
		if err != nil {
			return report, fmt.Errorf("failed to upsert rows %d-%d: %w", i, end, err)
		}
		report.Written += written

		if bar != nil {
			if err := bar.Add(end - i); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	if s.metrics != nil {
		s.metrics.RecordGauge(MetricCatalogSeeded, float64(report.Written), nil)
	}
	if s.logger != nil {
		s.logger.LogCatalogSeeded(ctx, report, time.Since(start).Milliseconds())
	}
	return report, nil
}

func newSeedProgress(total int, w io.Writer) *progressbar.ProgressBar {
	if w == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding products..."),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
