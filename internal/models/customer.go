package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the shopper profile used for personalisation. Most fields are
// free text captured by onboarding forms and are normalised at read time.
type Customer struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Age                 *int           `json:"age,omitempty"`
	Gender              string         `gorm:"type:varchar(32)" json:"gender,omitempty"`
	EmploymentStatus    string         `gorm:"type:varchar(64)" json:"employment_status,omitempty"`
	Occupation          string         `gorm:"type:varchar(128)" json:"occupation,omitempty"`
	Education           string         `gorm:"type:varchar(64)" json:"education,omitempty"`
	HouseholdSize       *int           `json:"household_size,omitempty"`
	HasChildren         *bool          `json:"has_children,omitempty"`
	MonthlyIncome       string         `gorm:"type:varchar(64)" json:"monthly_income,omitempty"`
	MaritalStatus       string         `gorm:"type:varchar(32)" json:"marital_status,omitempty"`
	PreferredCategories string         `gorm:"type:text" json:"preferred_categories,omitempty"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return errors.New("email is required")
	}

	if c.Age != nil && *c.Age < 0 {
		return errors.New("age cannot be negative")
	}

	if c.HouseholdSize != nil && *c.HouseholdSize < 0 {
		return errors.New("household size cannot be negative")
	}

	return nil
}

// PreferredCategoryList splits the comma separated preference field, keeping
// the first occurrence of each entry.
func (c *Customer) PreferredCategoryList() []string {
	if c == nil || c.PreferredCategories == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var prefs []string
	for _, raw := range strings.Split(c.PreferredCategories, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		prefs = append(prefs, raw)
	}
	return prefs
}

func (c *Customer) TableName() string {
	return "customers"
}
