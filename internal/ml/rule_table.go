package ml

import (
	"strconv"
	"strings"

	"auroramart/internal/catalog"
)

// RuleTableFromDataset reads mined rules exported as CSV. Item set cells may
// be written as frozenset({'A', 'B'}), {A, B}, A|B or A,B.
func RuleTableFromDataset(ds *catalog.Dataset) (*RuleTable, error) {
	antCol, ok := ds.Column("antecedents", "antecedent")
	if !ok {
		return nil, &catalog.MissingColumnError{Candidates: []string{"antecedents", "antecedent"}}
	}
	conCol, ok := ds.Column("consequents", "consequent")
	if !ok {
		return nil, &catalog.MissingColumnError{Candidates: []string{"consequents", "consequent"}}
	}
	supCol, _ := ds.Column("support")
	confCol, _ := ds.Column("confidence")
	liftCol, _ := ds.Column("lift")

	table := &RuleTable{Rows: make([]RuleRow, 0, ds.Len())}
	for _, row := range ds.Rows {
		consequents := ParseItemSet(ds.Value(row, conCol))
		if len(consequents) == 0 {
			continue
		}
		table.Rows = append(table.Rows, RuleRow{
			Antecedents: ParseItemSet(ds.Value(row, antCol)),
			Consequents: consequents,
			Support:     parseScore(ds.Value(row, supCol)),
			Confidence:  parseScore(ds.Value(row, confCol)),
			Lift:        parseScore(ds.Value(row, liftCol)),
		})
	}
	return table, nil
}

var itemSetWrapper = strings.NewReplacer(
	"frozenset(", "",
	"set(", "",
	"(", "",
	")", "",
	"{", "",
	"}", "",
	"[", "",
	"]", "",
	"'", "",
	`"`, "",
)

// ParseItemSet splits a serialised item set into its items
func ParseItemSet(cell string) []string {
	text := itemSetWrapper.Replace(strings.TrimSpace(cell))
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '|' || r == ';'
	})

	var items []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			items = append(items, f)
		}
	}
	return items
}

func parseScore(raw string) float64 {
	f, err := parseFinite(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return f
}

// scoreString formats a score the way rule reports print it
func scoreString(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
