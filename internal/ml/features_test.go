package ml

import (
	"testing"

	"auroramart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestParseIncomeBand(t *testing.T) {
	testCases := []struct {
		raw      string
		expected float64
	}{
		{"", 0},
		{"$2,001 - $4,000", 3000},
		{"2001 to 4000", 3000},
		{"SGD 0 – 2,000 per month", 1000},
		{"10001+", 12000},
		{"25000+", 26000},
		{"3000-5000", 4000},
		{"4500", 4500},
		{"-200", 0},
		{"lots", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseIncomeBand(tc.raw))
		})
	}
}

func TestBoolToIntAndSafeInt(t *testing.T) {
	assert.Equal(t, 1, BoolToInt("Yes"))
	assert.Equal(t, 1, BoolToInt("true"))
	assert.Equal(t, 0, BoolToInt("no"))
	assert.Equal(t, 0, BoolToInt(""))
	assert.Equal(t, 1, BoolToInt("maybe"))

	assert.Equal(t, 42, SafeInt("42", 0))
	assert.Equal(t, 3, SafeInt("3.7", 0))
	assert.Equal(t, 1, SafeInt("", 1))
	assert.Equal(t, 1, SafeInt("n/a", 1))
}

func TestCanonicalLabels(t *testing.T) {
	assert.Equal(t, "Male", CanonicalGender(" m "))
	assert.Equal(t, "Full-time", CanonicalEmployment("Full Time"))
	assert.Equal(t, "Doctorate", CanonicalEducation("PhD"))
	assert.Equal(t, "Tech", CanonicalOccupation("software"))
	assert.Equal(t, "Marine Biologist", CanonicalOccupation("marine biologist"))
	assert.Equal(t, "Widowed", CanonicalGender("Widowed"))
	assert.Equal(t, "", CanonicalOccupation("  "))
}

func TestBuildFeatures_NilProfile(t *testing.T) {
	row := BuildFeatures(nil, nil)
	assert.True(t, row.Empty())
	assert.Equal(t, 0, row.Len())

	assert.Nil(t, ProfileFromCustomer(nil))
}

func TestBuildFeatures_NaturalLayout(t *testing.T) {
	p := ProfileFromCustomer(&models.Customer{
		Age:              intPtr(34),
		Gender:           "f",
		EmploymentStatus: "pt",
		Occupation:       "teacher",
		Education:        "bd",
		HouseholdSize:    intPtr(0),
		HasChildren:      boolPtr(true),
		MonthlyIncome:    "$4,001 - $6,000",
	})

	row := BuildFeatures(p, nil)
	require.Equal(t, NaturalColumns(), row.Columns())

	age, _ := row.Get(FeatureAge)
	assert.Equal(t, 34.0, age.Float())
	household, _ := row.Get(FeatureHouseholdSize)
	assert.Equal(t, 1.0, household.Float())
	children, _ := row.Get(FeatureHasChildren)
	assert.Equal(t, 1.0, children.Float())
	income, _ := row.Get(FeatureMonthlyIncome)
	assert.Equal(t, 5000.0, income.Float())

	m := row.Map()
	assert.Equal(t, "Female", m[FeatureGender])
	assert.Equal(t, "Part-time", m[FeatureEmploymentStatus])
	assert.Equal(t, "Education", m[FeatureOccupation])
	assert.Equal(t, "Bachelor", m[FeatureEducation])
}

func TestBuildFeatures_ExpectedColumns(t *testing.T) {
	p := &Profile{Age: "29", Gender: "male", Occupation: "developer", MonthlyIncome: "6001-8000"}
	expected := []string{"gender_Male", "occupation_tech", "gender_Female", "age", "monthly_income_sgd", "favourite_colour", "marital_status_Single"}

	row := BuildFeatures(p, expected)
	require.Equal(t, expected, row.Columns())

	values := make([]float64, 0, row.Len())
	for _, col := range expected {
		v, ok := row.Get(col)
		require.True(t, ok)
		values = append(values, v.Float())
	}
	assert.Equal(t, []float64{1, 1, 0, 29, 7000, 0, 0}, values)
}

func TestProfile_SignalCount(t *testing.T) {
	sparse := ProfileFromCustomer(&models.Customer{Age: intPtr(25)})
	assert.Equal(t, 1, sparse.SignalCount())

	placeholders := &Profile{Gender: "N/A", Occupation: "unknown", MonthlyIncome: "-", HasChildren: "false", HouseholdSize: "0"}
	assert.Equal(t, 0, placeholders.SignalCount())

	rich := ProfileFromCustomer(&models.Customer{
		Age:              intPtr(40),
		Gender:           "Male",
		EmploymentStatus: "Retired",
		Occupation:       "Sales",
		Education:        "Master",
		HouseholdSize:    intPtr(3),
		HasChildren:      boolPtr(true),
		MonthlyIncome:    "10001+",
	})
	assert.Equal(t, 8, rich.SignalCount())

	var none *Profile
	assert.Equal(t, 0, none.SignalCount())
}
