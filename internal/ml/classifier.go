package ml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var ErrClassifierUnavailable = errors.New("category classifier unavailable")

// CategoryPredictor predicts a category token for a single feature row
type CategoryPredictor interface {
	PredictOne(row FeatureRow) (string, error)
}

// ColumnSchema is implemented by predictors trained on a fixed column layout
type ColumnSchema interface {
	ExpectedColumns() []string
}

// PredictorLoader produces the predictor on first use
type PredictorLoader func() (CategoryPredictor, error)

// CategoryClassifier wraps a lazily loaded predictor. A failed load is
// remembered for the life of the process and every prediction reports
// absent afterwards.
type CategoryClassifier struct {
	load   PredictorLoader
	logger *slog.Logger

	once      sync.Once
	predictor CategoryPredictor
	loadErr   error
}

func NewCategoryClassifier(load PredictorLoader, logger *slog.Logger) *CategoryClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryClassifier{load: load, logger: logger}
}

// NewStaticClassifier wraps an already constructed predictor
func NewStaticClassifier(p CategoryPredictor, logger *slog.Logger) *CategoryClassifier {
	return NewCategoryClassifier(func() (CategoryPredictor, error) {
		if p == nil {
			return nil, ErrClassifierUnavailable
		}
		return p, nil
	}, logger)
}

func (c *CategoryClassifier) get() (CategoryPredictor, error) {
	c.once.Do(func() {
		if c.load == nil {
			c.loadErr = ErrClassifierUnavailable
			return
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					c.loadErr = fmt.Errorf("classifier load panicked: %v", r)
				}
			}()
			c.predictor, c.loadErr = c.load()
		}()

		if c.loadErr == nil && c.predictor == nil {
			c.loadErr = ErrClassifierUnavailable
		}
		if c.loadErr != nil {
			c.logger.Warn("Category classifier unavailable",
				slog.String("event_type", "classifier_load_failed"),
				slog.String("error", c.loadErr.Error()),
			)
		}
	})
	return c.predictor, c.loadErr
}

// Available loads the predictor if needed and reports whether it is usable
func (c *CategoryClassifier) Available() bool {
	_, err := c.get()
	return err == nil
}

// Err returns the load error, if any
func (c *CategoryClassifier) Err() error {
	_, err := c.get()
	return err
}

// ExpectedColumns returns the predictor's column layout, or nil when it uses
// the natural layout.
func (c *CategoryClassifier) ExpectedColumns() []string {
	p, err := c.get()
	if err != nil {
		return nil
	}
	if schema, ok := p.(ColumnSchema); ok {
		return schema.ExpectedColumns()
	}
	return nil
}

// Features builds the row that would be fed to the predictor
func (c *CategoryClassifier) Features(p *Profile) FeatureRow {
	return BuildFeatures(p, c.ExpectedColumns())
}

// PredictCategory returns the predicted category token. Load failures,
// inference errors and panics are logged and reported as absent.
func (c *CategoryClassifier) PredictCategory(p *Profile) (string, bool) {
	if p == nil {
		return "", false
	}

	predictor, err := c.get()
	if err != nil {
		return "", false
	}

	row := c.Features(p)
	if row.Empty() {
		return "", false
	}

	label, err := safePredict(predictor, row)
	if err != nil {
		c.logger.Warn("Category prediction failed",
			slog.String("event_type", "classifier_predict_failed"),
			slog.String("error", err.Error()),
		)
		return "", false
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}
	return label, true
}

func safePredict(p CategoryPredictor, row FeatureRow) (label string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prediction panicked: %v", r)
		}
	}()
	return p.PredictOne(row)
}
