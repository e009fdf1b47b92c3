// Package catalog reads the tabular product catalogue exports that feed
// seeding and the model identifier bridge.
package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var ErrEmptyDataset = errors.New("dataset has no header row")

// Dataset is a fully loaded CSV table with case-insensitive header lookup
type Dataset struct {
	Headers []string
	Rows    [][]string
	index   map[string]int
}

// ReadFile loads a catalogue CSV. Files that are not valid UTF-8 are decoded
// as ISO-8859-1, which is what spreadsheet exports of the catalogue use.
func ReadFile(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return Parse(content)
}

// Read loads a catalogue CSV from r
func Read(r io.Reader) (*Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Dataset, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	if !utf8.Valid(content) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err != nil {
			return nil, fmt.Errorf("failed to decode latin-1 dataset: %w", err)
		}
		content = decoded
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		Headers: records[0],
		Rows:    records[1:],
		index:   make(map[string]int, len(records[0])),
	}
	for i, h := range ds.Headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, exists := ds.index[key]; !exists {
			ds.index[key] = i
		}
	}
	return ds, nil
}

// Len returns the number of data rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Column returns the index of the first candidate header present in the
// dataset, compared case-insensitively.
func (d *Dataset) Column(candidates ...string) (int, bool) {
	if d == nil {
		return -1, false
	}
	for _, candidate := range candidates {
		if idx, ok := d.index[strings.ToLower(strings.TrimSpace(candidate))]; ok {
			return idx, true
		}
	}
	return -1, false
}

// Value returns the trimmed cell at col, or "" for short rows and missing columns
func (d *Dataset) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
