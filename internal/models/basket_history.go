package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BasketHistory is a snapshot of the SKUs a customer had in their cart at a
// point in time (typically checkout).
type BasketHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Items      SKUList   `gorm:"type:text" json:"items"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (bh *BasketHistory) BeforeCreate(tx *gorm.DB) error {
	if bh.ID == uuid.Nil {
		bh.ID = uuid.New()
	}
	if bh.CreatedAt.IsZero() {
		bh.CreatedAt = time.Now()
	}
	return nil
}

func (bh *BasketHistory) TableName() string {
	return "basket_histories"
}

// SKUList stores a JSON array of SKUs. Older snapshots were written with mixed
// element types, so scanning stringifies every non-empty element.
type SKUList []string

// Value implements driver.Valuer interface
func (l SKUList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (l *SKUList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into SKUList", value)
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return err
	}

	out := make(SKUList, 0, len(raw))
	for _, item := range raw {
		if item == nil {
			continue
		}
		var sku string
		switch v := item.(type) {
		case string:
			sku = v
		case float64:
			sku = fmt.Sprintf("%g", v)
		default:
			sku = fmt.Sprint(v)
		}
		if sku = strings.TrimSpace(sku); sku != "" {
			out = append(out, sku)
		}
	}
	*l = out
	return nil
}
