package ml

import (
	"strconv"
	"strings"

	"auroramart/internal/models"
)

// Natural feature columns, in the order the classifier was trained on
const (
	FeatureAge              = "age"
	FeatureHouseholdSize    = "household_size"
	FeatureHasChildren      = "has_children"
	FeatureMonthlyIncome    = "monthly_income_numeric"
	FeatureGender           = "gender"
	FeatureEmploymentStatus = "employment_status"
	FeatureOccupation       = "occupation"
	FeatureEducation        = "education"

	legacyIncomeColumn = "monthly_income_sgd"
)

var naturalColumns = []string{
	FeatureAge,
	FeatureHouseholdSize,
	FeatureHasChildren,
	FeatureMonthlyIncome,
	FeatureGender,
	FeatureEmploymentStatus,
	FeatureOccupation,
	FeatureEducation,
}

var categoricalColumns = map[string]struct{}{
	FeatureGender:           {},
	FeatureEmploymentStatus: {},
	FeatureOccupation:       {},
	FeatureEducation:        {},
}

// NaturalColumns returns the default feature layout
func NaturalColumns() []string {
	return append([]string(nil), naturalColumns...)
}

// Profile is the raw, unnormalised view of a customer that features are
// derived from.
type Profile struct {
	Age              string
	HouseholdSize    string
	HasChildren      string
	MonthlyIncome    string
	Gender           string
	EmploymentStatus string
	Occupation       string
	Education        string
}

// ProfileFromCustomer returns nil for a nil customer
func ProfileFromCustomer(c *models.Customer) *Profile {
	if c == nil {
		return nil
	}

	p := &Profile{
		MonthlyIncome:    c.MonthlyIncome,
		Gender:           c.Gender,
		EmploymentStatus: c.EmploymentStatus,
		Occupation:       c.Occupation,
		Education:        c.Education,
	}
	if c.Age != nil {
		p.Age = strconv.Itoa(*c.Age)
	}
	if c.HouseholdSize != nil {
		p.HouseholdSize = strconv.Itoa(*c.HouseholdSize)
	}
	if c.HasChildren != nil {
		p.HasChildren = strconv.FormatBool(*c.HasChildren)
	}
	return p
}

// SignalCount counts the profile fields that carry real information. It is
// what the classifier richness guard is evaluated against.
func (p *Profile) SignalCount() int {
	if p == nil {
		return 0
	}

	count := 0
	if SafeInt(p.Age, 0) > 0 {
		count++
	}
	for _, v := range []string{p.Gender, p.EmploymentStatus, p.Occupation, p.Education} {
		if !IsPlaceholder(v) {
			count++
		}
	}
	if SafeInt(p.HouseholdSize, 0) > 0 {
		count++
	}
	if BoolToInt(p.HasChildren) == 1 && !IsPlaceholder(p.HasChildren) {
		count++
	}
	if !IsPlaceholder(p.MonthlyIncome) {
		count++
	}
	return count
}

// FeatureValue is either a number or a categorical label
type FeatureValue struct {
	number float64
	label  string
	isText bool
}

func Number(v float64) FeatureValue { return FeatureValue{number: v} }
func Label(s string) FeatureValue   { return FeatureValue{label: s, isText: true} }

func (v FeatureValue) IsLabel() bool { return v.isText }

// Float returns the numeric value; labels are zero
func (v FeatureValue) Float() float64 {
	if v.isText {
		return 0
	}
	return v.number
}

func (v FeatureValue) String() string {
	if v.isText {
		return v.label
	}
	return strconv.FormatFloat(v.number, 'f', -1, 64)
}

// Interface returns the value as a plain string or float64
func (v FeatureValue) Interface() any {
	if v.isText {
		return v.label
	}
	return v.number
}

// FeatureRow is a single ordered input row for the classifier
type FeatureRow struct {
	columns []string
	values  []FeatureValue
}

func (r *FeatureRow) set(column string, v FeatureValue) {
	r.columns = append(r.columns, column)
	r.values = append(r.values, v)
}

func (r FeatureRow) Len() int { return len(r.columns) }

func (r FeatureRow) Empty() bool { return len(r.columns) == 0 }

func (r FeatureRow) Columns() []string {
	return append([]string(nil), r.columns...)
}

// Get returns the value of the first column named column
func (r FeatureRow) Get(column string) (FeatureValue, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}
	return FeatureValue{}, false
}

func (r FeatureRow) Map() map[string]any {
	out := make(map[string]any, len(r.columns))
	for i, c := range r.columns {
		if _, exists := out[c]; !exists {
			out[c] = r.values[i].Interface()
		}
	}
	return out
}

// BuildFeatures converts a profile into a classifier row. With no expected
// columns the natural layout is emitted. Otherwise the row has exactly the
// expected columns in order: natural features are copied, <field>_<value>
// columns become one-hot indicators for categorical fields, and anything
// else is 0. A nil profile yields an empty row.
func BuildFeatures(p *Profile, expected []string) FeatureRow {
	var row FeatureRow
	if p == nil {
		return row
	}

	natural := p.naturalFeatures()

	if len(expected) == 0 {
		for _, col := range naturalColumns {
			row.set(col, natural[col])
		}
		return row
	}

	for _, col := range expected {
		name := strings.TrimSpace(col)
		if name == legacyIncomeColumn {
			name = FeatureMonthlyIncome
		}

		if v, ok := natural[name]; ok {
			row.set(col, v)
			continue
		}

		row.set(col, Number(oneHot(natural, name)))
	}
	return row
}

func oneHot(natural map[string]FeatureValue, column string) float64 {
	idx := strings.LastIndex(column, "_")
	if idx <= 0 {
		return 0
	}
	field, want := column[:idx], column[idx+1:]
	if _, ok := categoricalColumns[field]; !ok {
		return 0
	}
	if strings.EqualFold(natural[field].String(), want) {
		return 1
	}
	return 0
}

func (p *Profile) naturalFeatures() map[string]FeatureValue {
	age := SafeInt(p.Age, 0)
	if age < 0 {
		age = 0
	}
	household := SafeInt(p.HouseholdSize, 1)
	if household < 1 {
		household = 1
	}

	return map[string]FeatureValue{
		FeatureAge:              Number(float64(age)),
		FeatureHouseholdSize:    Number(float64(household)),
		FeatureHasChildren:      Number(float64(BoolToInt(p.HasChildren))),
		FeatureMonthlyIncome:    Number(ParseIncomeBand(p.MonthlyIncome)),
		FeatureGender:           Label(CanonicalGender(p.Gender)),
		FeatureEmploymentStatus: Label(CanonicalEmployment(p.EmploymentStatus)),
		FeatureOccupation:       Label(CanonicalOccupation(p.Occupation)),
		FeatureEducation:        Label(CanonicalEducation(p.Education)),
	}
}
