package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"auroramart/internal/config"
	"auroramart/internal/database"
	"auroramart/internal/models"
	"auroramart/internal/services"
	"auroramart/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Recommendation: config.RecommendationConfig{
			ArtifactDirs:       []string{dir},
			ClassifierFile:     "classifier.json",
			RulesFile:          "rules.json",
			CatalogPath:        filepath.Join(dir, "missing.csv"),
			DefaultLimit:       4,
			MaxLimit:           20,
			RichnessThreshold:  3,
			BasketCap:          10,
			RulesCandidateMult: 2,
		},
	}
}

func TestBuild_DegradesWithoutArtifacts(t *testing.T) {
	db := database.SetupTestDB(t)
	database.CreateTestProduct(t, db, "TOY-1", "Toys & Games", 5)
	database.CreateTestProduct(t, db, "TOY-2", "toys", 0)

	reg := prometheus.NewRegistry()
	c, err := Build(testConfig(t), db.DB, nil, services.NewPrometheusMetricsWith(reg))
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{ArtifactClassifier: false, ArtifactRules: false}, c.ArtifactStatus())
	assert.Equal(t, 0.0, artifactGauge(t, reg, ArtifactRules))

	result, err := c.Recommendation.Recommend(context.Background(), uuid.Nil, 0)
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, result.Source)
	assert.Equal(t, []string{"TOY-1"}, result.SKUs())

	summaries, err := c.Categories.ListCategories(context.Background())
	require.NoError(t, err)
	for _, s := range summaries {
		if s.Slug == taxonomy.SlugToysGames {
			assert.Equal(t, int64(2), s.Products)
			assert.Equal(t, int64(1), s.InStock)
		}
	}

	refresher := c.NewRefresher()
	n, err := refresher.RefreshBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBuild_CategoryQueriesReachSeparatorSpellings(t *testing.T) {
	db := database.SetupTestDB(t)
	database.CreateTestProduct(t, db, "HK-1", "Home-and-Kitchen", 5)
	database.CreateTestProduct(t, db, "HK-2", "HOME/KITCHEN", 2)
	database.CreateTestProduct(t, db, "TOY-1", "toys", 9)
	customer := database.CreateTestCustomer(t, db, "kitchen@example.com")
	require.NoError(t, db.Model(customer).Update("preferred_categories", "Home & Kitchen").Error)

	c, err := Build(testConfig(t), db.DB, nil, services.NewPrometheusMetricsWith(prometheus.NewRegistry()))
	require.NoError(t, err)
	ctx := context.Background()

	listing, err := c.Categories.BrowseCategory(ctx, taxonomy.SlugHomeKitchen, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), listing.Total)

	personal, err := c.Recommendation.Recommend(ctx, customer.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, models.SourceProfile, personal.Source)
	assert.Equal(t, []string{"HK-1", "HK-2"}, personal.SKUs())

	set, err := c.Recommendation.CompleteTheSet(ctx, []string{"HK-2"}, 4)
	require.NoError(t, err)
	assert.Equal(t, models.StageCategoryFallback, set.Stage)
	assert.Equal(t, taxonomy.SlugHomeKitchen, set.Category)
	assert.Equal(t, []string{"HK-1"}, set.SKUs())
}

func TestBuild_AliasFile(t *testing.T) {
	cfg := testConfig(t)
	aliases := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(aliases, []byte("aliases:\n  - alias: gizmos\n    category: electronics\n"), 0644))
	cfg.Recommendation.AliasFile = aliases

	resolver, err := NewResolver(cfg.Recommendation, nil)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.SlugElectronics, resolver.ResolveSlug("Gizmos"))

	cfg.Recommendation.AliasFile = filepath.Join(t.TempDir(), "nope.yaml")
	db := database.SetupTestDB(t)
	_, err = Build(cfg, db.DB, nil, services.NewPrometheusMetricsWith(prometheus.NewRegistry()))
	assert.ErrorContains(t, err, "failed to load category aliases")
}

func artifactGauge(t *testing.T, reg *prometheus.Registry, artifact string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "recommendation_artifact_available" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "artifact" && l.GetValue() == artifact {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("no gauge for %s", artifact)
	return 0
}
