package ml

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"auroramart/internal/catalog"

	"github.com/goccy/go-json"
)

var ErrArtifactNotFound = errors.New("model artifact not found")

// ArtifactStore locates offline-trained model files. Directories are
// searched in order and the first match is used.
type ArtifactStore struct {
	dirs           []string
	classifierFile string
	rulesFile      string
	logger         *slog.Logger
}

func NewArtifactStore(dirs []string, classifierFile, rulesFile string, logger *slog.Logger) *ArtifactStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArtifactStore{
		dirs:           dirs,
		classifierFile: classifierFile,
		rulesFile:      rulesFile,
		logger:         logger,
	}
}

// Locate returns the path of name in the first directory that has it
func (s *ArtifactStore) Locate(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrArtifactNotFound
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
		}
		return name, nil
	}
	for _, dir := range s.dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, strings.Join(s.dirs, ", "))
}

// LoadClassifier satisfies PredictorLoader
func (s *ArtifactStore) LoadClassifier() (CategoryPredictor, error) {
	path, err := s.Locate(s.classifierFile)
	if err != nil {
		return nil, err
	}
	tree, err := LoadDecisionTree(path)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Category classifier loaded",
		slog.String("event_type", "classifier_loaded"),
		slog.String("path", path),
		slog.Int("feature_count", len(tree.FeatureNames)),
	)
	return tree, nil
}

// LoadRules satisfies RulesLoader
func (s *ArtifactStore) LoadRules() (RuleArtifact, error) {
	path, err := s.Locate(s.rulesFile)
	if err != nil {
		return RuleArtifact{kind: KindUnknown}, err
	}
	artifact, err := LoadRuleArtifact(path)
	if err != nil {
		return artifact, err
	}
	s.logger.Info("Association rules loaded",
		slog.String("event_type", "rules_loaded"),
		slog.String("path", path),
		slog.String("kind", string(artifact.Kind())),
	)
	return artifact, nil
}

type ruleFile struct {
	Rules []RuleEntry `json:"rules"`
	Table []RuleRow   `json:"table"`
}

// LoadRuleArtifact reads a rule artifact. CSV files are raw rule tables.
// JSON files carry either a "rules" lookup, a "table" of rows, or a bare
// array of rows.
func LoadRuleArtifact(path string) (RuleArtifact, error) {
	unknown := RuleArtifact{kind: KindUnknown}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		ds, err := catalog.ReadFile(path)
		if err != nil {
			return unknown, err
		}
		table, err := RuleTableFromDataset(ds)
		if err != nil {
			return unknown, err
		}
		return NewRuleArtifact(table), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return unknown, fmt.Errorf("failed to read rule artifact: %w", err)
	}
	return ParseRuleArtifact(content)
}

func ParseRuleArtifact(content []byte) (RuleArtifact, error) {
	unknown := RuleArtifact{kind: KindUnknown}

	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		var rows []RuleRow
		if err := json.Unmarshal(content, &rows); err != nil {
			return unknown, fmt.Errorf("failed to decode rule table: %w", err)
		}
		return NewRuleArtifact(&RuleTable{Rows: rows}), nil
	}

	var file ruleFile
	if err := json.Unmarshal(content, &file); err != nil {
		return unknown, fmt.Errorf("failed to decode rule artifact: %w", err)
	}
	switch {
	case len(file.Rules) > 0:
		return NewRuleArtifact(NewRuleLookup(file.Rules)), nil
	case len(file.Table) > 0:
		return NewRuleArtifact(&RuleTable{Rows: file.Table}), nil
	}
	return unknown, ErrUnknownRuleArtifact
}

// ArtifactReport summarises one artifact for operators
type ArtifactReport struct {
	Name    string       `json:"name"`
	Path    string       `json:"path,omitempty"`
	Kind    ArtifactKind `json:"kind,omitempty"`
	Entries int          `json:"entries"`
	Columns []string     `json:"columns,omitempty"`
	Sample  []string     `json:"sample,omitempty"`
	Error   string       `json:"error,omitempty"`
}

const reportSampleSize = 5

// Describe loads both artifacts from disk and reports what was found
func (s *ArtifactStore) Describe() []ArtifactReport {
	classifier := ArtifactReport{Name: s.classifierFile}
	if path, err := s.Locate(s.classifierFile); err != nil {
		classifier.Error = err.Error()
	} else {
		classifier.Path = path
		if tree, err := LoadDecisionTree(path); err != nil {
			classifier.Error = err.Error()
		} else {
			classifier.Kind = "decision_tree"
			classifier.Columns = tree.ExpectedColumns()
			classifier.Entries = len(tree.Classes)
			classifier.Sample = firstN(tree.Classes, reportSampleSize)
		}
	}

	rules := ArtifactReport{Name: s.rulesFile}
	if path, err := s.Locate(s.rulesFile); err != nil {
		rules.Error = err.Error()
	} else {
		rules.Path = path
		if artifact, err := LoadRuleArtifact(path); err != nil {
			rules.Error = err.Error()
		} else {
			rules.Kind = artifact.Kind()
			rules.Entries, rules.Sample = artifact.summary(reportSampleSize)
		}
	}

	return []ArtifactReport{classifier, rules}
}

func (a RuleArtifact) summary(n int) (int, []string) {
	var sample []string
	switch a.Kind() {
	case KindRecommender:
		lookup, ok := a.native.(*RuleLookup)
		if !ok {
			return 0, nil
		}
		for _, e := range firstN(lookup.entries, n) {
			for _, t := range firstN(e.Targets, 1) {
				sample = append(sample, formatRule(e.Antecedent, []string{t.Item}, t.Confidence, t.Lift))
			}
		}
		return lookup.Len(), sample
	case KindRuleTable:
		for _, row := range firstN(a.table.Rows, n) {
			sample = append(sample, formatRule(row.Antecedents, row.Consequents, row.Confidence, row.Lift))
		}
		return a.table.Len(), sample
	}
	return 0, nil
}

func formatRule(antecedent, consequent []string, confidence, lift float64) string {
	return fmt.Sprintf("{%s} -> {%s} confidence=%s lift=%s",
		strings.Join(antecedent, ", "),
		strings.Join(consequent, ", "),
		scoreString(confidence),
		scoreString(lift),
	)
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
