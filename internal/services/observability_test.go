package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"auroramart/internal/models"
	"auroramart/internal/services"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_RecordsRecommendationSources(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := services.NewPrometheusMetricsWith(reg)

	m.IncrementCounter(services.MetricRecommendationResolved, map[string]string{"source": "profile", "stage": "profile"})
	m.IncrementCounter(services.MetricRecommendationResolved, map[string]string{"source": "profile", "stage": "profile"})
	m.IncrementCounter(services.MetricPrecomputeRefreshed, map[string]string{"status": ""})
	m.RecordGauge(services.MetricArtifactAvailable, 1, map[string]string{"artifact": "classifier"})
	m.RecordGauge(services.MetricCatalogSeeded, 12, nil)
	m.RecordProcessingTime(services.MetricRecommendationDuration, 3*time.Millisecond)
	m.IncrementCounter("unknown.metric", nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]*float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				v := metric.GetCounter().GetValue()
				values[family.GetName()] = &v
			case metric.GetGauge() != nil:
				v := metric.GetGauge().GetValue()
				values[family.GetName()] = &v
			}
		}
	}

	require.NotNil(t, values["recommendation_source_total"])
	assert.Equal(t, 2.0, *values["recommendation_source_total"])
	assert.Equal(t, 1.0, *values["recommendation_artifact_available"])
	assert.Equal(t, 12.0, *values["catalog_rows_written_total"])
	assert.Nil(t, values["recommendation_precompute_total"])
	count, err := testutil.GatherAndCount(reg, "recommendation_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecommendationLogger_WritesStructuredEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := services.NewRecommendationLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := services.WithRequestID(context.Background(), "req-42")
	customerID := uuid.New()
	logger.LogRecommendationResolved(ctx, customerID, &models.RecommendationResult{
		Source: models.SourceAssociationRules,
		Stage:  models.StageAssociationRules,
	}, 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recommendation_resolved", entry["event_type"])
	assert.Equal(t, "association_rules", entry["source"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, customerID.String(), entry["customer_id"])

	buf.Reset()
	logger.LogRecommendationResolved(ctx, customerID, nil, 0)
	logger.LogCatalogSeeded(ctx, nil, 0)
	assert.Empty(t, buf.String())
}
