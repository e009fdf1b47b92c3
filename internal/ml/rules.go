package ml

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var ErrUnknownRuleArtifact = errors.New("unrecognised association rule artifact")

// RuleTarget is a scored consequent of an antecedent item set
type RuleTarget struct {
	Item       string  `json:"item"`
	Confidence float64 `json:"confidence"`
	Lift       float64 `json:"lift"`
}

// RuleEntry maps an antecedent item set to its consequents
type RuleEntry struct {
	Antecedent []string     `json:"antecedent"`
	Targets    []RuleTarget `json:"targets"`
}

// NativeRecommender is an artifact that ranks candidates itself
type NativeRecommender interface {
	Recommend(basket []string, topN int) []string
}

// BatchPredictor is a generic model scoring many baskets at once
type BatchPredictor interface {
	Predict(baskets [][]string) ([][]string, error)
}

func itemKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func itemSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if k := itemKey(it); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

func canonicalItems(items []string) []string {
	set := itemSet(items)
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func subsetOf(items []string, set map[string]struct{}) bool {
	for _, it := range items {
		if _, ok := set[it]; !ok {
			return false
		}
	}
	return true
}

type ruleScore struct {
	confidence float64
	lift       float64
}

// candidateScores keeps the best (confidence, lift) per consequent outside
// the basket.
type candidateScores struct {
	basket map[string]struct{}
	best   map[string]ruleScore
}

func newCandidateScores(basket map[string]struct{}) *candidateScores {
	return &candidateScores{basket: basket, best: make(map[string]ruleScore)}
}

func (c *candidateScores) offer(item string, confidence, lift float64) {
	key := itemKey(item)
	if key == "" {
		return
	}
	if _, inBasket := c.basket[key]; inBasket {
		return
	}
	cur, seen := c.best[key]
	if !seen || confidence > cur.confidence || (confidence == cur.confidence && lift > cur.lift) {
		c.best[key] = ruleScore{confidence: confidence, lift: lift}
	}
}

// ranked orders by confidence then lift, both descending, then item id
func (c *candidateScores) ranked(topN int) []string {
	items := make([]string, 0, len(c.best))
	for k := range c.best {
		items = append(items, k)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := c.best[items[i]], c.best[items[j]]
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		if a.lift != b.lift {
			return a.lift > b.lift
		}
		return items[i] < items[j]
	})
	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}
	return items
}

// RuleLookup is the precomputed antecedent to consequents table produced by
// the offline training job.
type RuleLookup struct {
	entries []RuleEntry
}

var _ NativeRecommender = (*RuleLookup)(nil)

// NewRuleLookup canonicalises antecedents and merges entries that share one
func NewRuleLookup(entries []RuleEntry) *RuleLookup {
	index := make(map[string]int)
	l := &RuleLookup{}
	for _, e := range entries {
		antecedent := canonicalItems(e.Antecedent)
		key := strings.Join(antecedent, "\x1f")

		targets := make([]RuleTarget, 0, len(e.Targets))
		for _, t := range e.Targets {
			if item := itemKey(t.Item); item != "" {
				targets = append(targets, RuleTarget{Item: item, Confidence: t.Confidence, Lift: t.Lift})
			}
		}

		if i, ok := index[key]; ok {
			l.entries[i].Targets = append(l.entries[i].Targets, targets...)
			continue
		}
		index[key] = len(l.entries)
		l.entries = append(l.entries, RuleEntry{Antecedent: antecedent, Targets: targets})
	}
	return l
}

func (l *RuleLookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Recommend ranks consequents of every antecedent contained in the basket
func (l *RuleLookup) Recommend(basket []string, topN int) []string {
	if l == nil || topN <= 0 {
		return nil
	}
	set := itemSet(basket)
	if len(set) == 0 {
		return nil
	}

	scores := newCandidateScores(set)
	for _, e := range l.entries {
		if !subsetOf(e.Antecedent, set) {
			continue
		}
		for _, t := range e.Targets {
			scores.offer(t.Item, t.Confidence, t.Lift)
		}
	}
	return scores.ranked(topN)
}

// RuleRow is one mined association rule
type RuleRow struct {
	Antecedents []string `json:"antecedents"`
	Consequents []string `json:"consequents"`
	Support     float64  `json:"support"`
	Confidence  float64  `json:"confidence"`
	Lift        float64  `json:"lift"`
}

// RuleTable is a raw mined rule list scanned per request
type RuleTable struct {
	Rows []RuleRow
}

func (t *RuleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Scan collects consequents of rules whose antecedents are contained in the
// basket. Rules with an empty antecedent always match.
func (t *RuleTable) Scan(basket []string, topN int) []string {
	if t == nil || topN <= 0 {
		return nil
	}
	set := itemSet(basket)
	if len(set) == 0 {
		return nil
	}

	scores := newCandidateScores(set)
	for _, row := range t.Rows {
		if !subsetOf(canonicalItems(row.Antecedents), set) {
			continue
		}
		for _, item := range row.Consequents {
			scores.offer(item, row.Confidence, row.Lift)
		}
	}
	return scores.ranked(topN)
}

// ArtifactKind identifies how a rule artifact is queried
type ArtifactKind string

const (
	KindRecommender ArtifactKind = "recommender"
	KindPredictor   ArtifactKind = "predictor"
	KindRuleTable   ArtifactKind = "rule_table"
	KindUnknown     ArtifactKind = "unknown"
)

// RuleArtifact is a loaded rule model of one of the supported shapes
type RuleArtifact struct {
	kind      ArtifactKind
	native    NativeRecommender
	predictor BatchPredictor
	table     *RuleTable
}

// NewRuleArtifact classifies v. Shapes are tried in order: a native
// recommender, a batch predictor, then a raw rule table. Anything else is
// unknown and yields no candidates.
func NewRuleArtifact(v any) RuleArtifact {
	switch a := v.(type) {
	case nil:
		return RuleArtifact{kind: KindUnknown}
	case NativeRecommender:
		return RuleArtifact{kind: KindRecommender, native: a}
	case BatchPredictor:
		return RuleArtifact{kind: KindPredictor, predictor: a}
	case *RuleTable:
		if a == nil {
			return RuleArtifact{kind: KindUnknown}
		}
		return RuleArtifact{kind: KindRuleTable, table: a}
	case RuleTable:
		return RuleArtifact{kind: KindRuleTable, table: &a}
	case []RuleRow:
		return RuleArtifact{kind: KindRuleTable, table: &RuleTable{Rows: a}}
	}
	return RuleArtifact{kind: KindUnknown}
}

func (a RuleArtifact) Kind() ArtifactKind {
	if a.kind == "" {
		return KindUnknown
	}
	return a.kind
}

// Candidates asks the artifact for up to limit identifiers for basket.
// Panics inside third-party shapes are returned as errors.
func (a RuleArtifact) Candidates(basket []string, limit int) (ids []string, err error) {
	if limit <= 0 || len(basket) == 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			ids, err = nil, fmt.Errorf("rule artifact panicked: %v", r)
		}
	}()

	switch a.Kind() {
	case KindRecommender:
		return a.native.Recommend(slices.Clone(basket), limit), nil
	case KindPredictor:
		out, err := a.predictor.Predict([][]string{slices.Clone(basket)})
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out[0], nil
	case KindRuleTable:
		return a.table.Scan(basket, limit), nil
	}
	return nil, ErrUnknownRuleArtifact
}
