package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MaxSKULength      = 64
	MaxCategoryLength = 100
)

var skuPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]*$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sku", validateSKU)
	_ = v.RegisterValidation("category", validateCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	return &Validator{validate: v}
}

// IsSKU reports whether s looks like a catalogue SKU
func IsSKU(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && len(s) <= MaxSKULength && skuPattern.MatchString(s)
}

// validateSKU accepts catalogue SKUs: letters, digits, dot, dash and underscore
func validateSKU(fl validator.FieldLevel) bool {
	return IsSKU(fl.Field().String())
}

// validateCategory accepts any non-blank free-text category up to
// MaxCategoryLength characters. Unknown spellings are allowed since the
// resolver decides what they mean.
func validateCategory(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	return raw != "" && utf8.RuneCountInString(raw) <= MaxCategoryLength
}
