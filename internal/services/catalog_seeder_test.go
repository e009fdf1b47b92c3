package services_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"auroramart/internal/models"
	"auroramart/internal/repositories/repository_mocks"
	"auroramart/internal/services"
	"auroramart/internal/services/service_mocks"
	"auroramart/internal/taxonomy"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedCatalog = `SKU code,Product name,Product category,Quantity on hand,Unit price
ELEC-001,Headphones,Electronics & Gadgets,25,99.90
HOME-010,Cast Iron Pan,Home and Kitchen,0,24.90
,Orphan row,Books,3,9.90
elec-001,Headphones Again,Electronics,1,10
GARD-001,Hose,Garden,4,15
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCatalogSeeder_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	logger := service_mocks.NewMockRecommendationLoggerInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	path := writeCatalog(t, seedCatalog)

	var upserted []models.Product
	products.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(batch []models.Product) (int64, error) {
		upserted = append(upserted, batch...)
		return int64(len(batch)), nil
	})
	metrics.EXPECT().RecordGauge(services.MetricCatalogSeeded, float64(3), gomock.Any())
	logger.EXPECT().LogCatalogSeeded(gomock.Any(), gomock.Any(), gomock.Any())

	var progress bytes.Buffer
	seeder := services.NewCatalogSeeder(products, taxonomy.NewResolver(nil), logger, metrics)
	report, err := seeder.Seed(context.Background(), path, &progress)

	require.NoError(t, err)
	assert.Equal(t, 5, report.Rows)
	assert.Equal(t, int64(3), report.Written)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, []string{"Garden"}, report.UnresolvedCategories)

	require.Len(t, upserted, 3)
	assert.Equal(t, taxonomy.SlugElectronics, upserted[0].Category)
	assert.Equal(t, "Headphones", upserted[0].Name)
	assert.Equal(t, taxonomy.SlugHomeKitchen, upserted[1].Category)
	assert.Equal(t, taxonomy.SlugOther, upserted[2].Category)
	assert.NotEmpty(t, progress.String())
}

func TestCatalogSeeder_UpsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	path := writeCatalog(t, seedCatalog)

	products.EXPECT().Upsert(gomock.Any()).Return(int64(0), errors.New("unique violation"))

	report, err := services.NewCatalogSeeder(products, nil, nil, nil).Seed(context.Background(), path, nil)

	assert.ErrorContains(t, err, "failed to upsert rows 0-3")
	assert.Equal(t, int64(0), report.Written)
}

func TestCatalogSeeder_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)

	_, err := services.NewCatalogSeeder(products, nil, nil, nil).Seed(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), nil)

	assert.ErrorContains(t, err, "failed to read catalog")
}

func TestCatalogSeeder_MissingSKUColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := repository_mocks.NewMockProductRepositoryInterface(ctrl)
	path := writeCatalog(t, "name,category\nPan,home\n")

	_, err := services.NewCatalogSeeder(products, nil, nil, nil).Seed(context.Background(), path, nil)

	assert.ErrorContains(t, err, "failed to parse catalog")
}
