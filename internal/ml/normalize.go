package ml

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var incomeBands = map[string]float64{
	"0-2000":      1000,
	"2001-4000":   3000,
	"4001-6000":   5000,
	"6001-8000":   7000,
	"8001-10000":  9000,
	"10001+":      12000,
	"10001-12000": 11000,
	"12001-14000": 13000,
	"14001-16000": 15000,
	"16001-18000": 17000,
	"18001-20000": 19000,
}

var incomeCleaner = strings.NewReplacer(
	"sgd", "",
	"$", "",
	",", "",
	"–", "-",
	"—", "-",
	"to", "-",
	"per", "",
	"month", "",
	" ", "",
)

// ParseIncomeBand converts a free-text monthly income band into a
// representative amount. Unrecognised text is parsed as a bare number, and
// anything else is zero.
func ParseIncomeBand(raw string) float64 {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return 0
	}
	cleaned := incomeCleaner.Replace(text)

	if v, ok := incomeBands[cleaned]; ok {
		return v
	}

	if base, ok := strings.CutSuffix(cleaned, "+"); ok {
		n, err := parseFinite(base)
		if err != nil {
			return 0
		}
		return n + 1000
	}

	if left, right, ok := strings.Cut(cleaned, "-"); ok && left != "" {
		lo, errLo := parseFinite(left)
		hi, errHi := parseFinite(right)
		if errLo == nil && errHi == nil {
			if hi <= 0 {
				return math.Max(lo, 0)
			}
			return math.Max((lo+hi)/2, 0)
		}
	}

	n, err := parseFinite(cleaned)
	if err != nil {
		return 0
	}
	return math.Max(n, 0)
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

// BoolToInt coerces truthy strings to 1. Unrecognised non-empty text counts
// as set.
func BoolToInt(raw string) int {
	text := strings.ToLower(strings.TrimSpace(raw))
	switch text {
	case "":
		return 0
	case "1", "true", "yes", "y", "t":
		return 1
	case "0", "false", "no", "n", "f":
		return 0
	}
	return 1
}

// SafeInt parses an integer, accepting float text, falling back to def
func SafeInt(raw string, def int) int {
	text := strings.TrimSpace(raw)
	if text == "" {
		return def
	}
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	f, err := parseFinite(text)
	if err != nil {
		return def
	}
	return int(f)
}

var genderAliases = map[string]string{
	"m":      "Male",
	"male":   "Male",
	"f":      "Female",
	"female": "Female",
	"o":      "Other",
	"other":  "Other",
}

var employmentAliases = map[string]string{
	"ft":            "Full-time",
	"full-time":     "Full-time",
	"fulltime":      "Full-time",
	"full time":     "Full-time",
	"pt":            "Part-time",
	"part-time":     "Part-time",
	"parttime":      "Part-time",
	"part time":     "Part-time",
	"se":            "Self-employed",
	"self-employed": "Self-employed",
	"self employed": "Self-employed",
	"st":            "Student",
	"student":       "Student",
	"rt":            "Retired",
	"retired":       "Retired",
}

var educationAliases = map[string]string{
	"hs":          "Secondary",
	"highschool":  "Secondary",
	"high school": "Secondary",
	"secondary":   "Secondary",
	"dp":          "Diploma",
	"diploma":     "Diploma",
	"bd":          "Bachelor",
	"bachelor":    "Bachelor",
	"ms":          "Master",
	"master":      "Master",
	"dr":          "Doctorate",
	"doctorate":   "Doctorate",
	"phd":         "Doctorate",
}

var occupationAliases = map[string]string{
	"admin":            "Admin",
	"administrator":    "Admin",
	"administration":   "Admin",
	"operations":       "Admin",
	"office":           "Admin",
	"education":        "Education",
	"teacher":          "Education",
	"teaching":         "Education",
	"lecturer":         "Education",
	"sales":            "Sales",
	"salesperson":      "Sales",
	"marketing":        "Sales",
	"service":          "Service",
	"customer service": "Service",
	"support":          "Service",
	"hospitality":      "Service",
	"skilled trades":   "Skilled Trades",
	"technician":       "Skilled Trades",
	"mechanic":         "Skilled Trades",
	"construction":     "Skilled Trades",
	"craftsman":        "Skilled Trades",
	"tech":             "Tech",
	"technology":       "Tech",
	"developer":        "Tech",
	"it":               "Tech",
	"software":         "Tech",
	"engineer":         "Tech",
	"programmer":       "Tech",
}

func canonicalLabel(raw string, aliases map[string]string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	if v, ok := aliases[strings.ToLower(text)]; ok {
		return v
	}
	return text
}

func CanonicalGender(raw string) string     { return canonicalLabel(raw, genderAliases) }
func CanonicalEmployment(raw string) string { return canonicalLabel(raw, employmentAliases) }
func CanonicalEducation(raw string) string  { return canonicalLabel(raw, educationAliases) }

// CanonicalOccupation groups job titles into the occupation buckets used in
// training; unknown titles are title-cased.
func CanonicalOccupation(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	if v, ok := occupationAliases[strings.ToLower(text)]; ok {
		return v
	}
	return cases.Title(language.Und).String(text)
}

var placeholderValues = map[string]struct{}{
	"":                  {},
	"-":                 {},
	"n/a":               {},
	"na":                {},
	"none":              {},
	"null":              {},
	"unknown":           {},
	"not specified":     {},
	"prefer not to say": {},
}

// IsPlaceholder reports whether a profile value carries no real signal
func IsPlaceholder(raw string) bool {
	_, ok := placeholderValues[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}
