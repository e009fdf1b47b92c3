package main

import (
	"fmt"
	"io"
	"strconv"

	"auroramart/internal/app"
	"auroramart/internal/database"
	"auroramart/internal/services"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
)

// openComponents connects to the database and wires the engine. Metrics go
// to a private registry; nothing scrapes a CLI process.
func (o *options) openComponents() (*app.Components, func(), error) {
	db, err := database.Initialize(o.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			o.logger.Warn("Failed to close database", "error", err)
		}
	}

	components, err := app.Build(o.cfg, db.DB, o.logger, services.NewPrometheusMetricsWith(prometheus.NewRegistry()))
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return components, closeDB, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func boolOrDash(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}
