package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultReorderThreshold = 10
	MaxProductRating        = 5.0
)

type Product struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SKU              string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	Category         string          `gorm:"type:varchar(100);index" json:"category"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	Stock            int             `gorm:"not null;default:0;index" json:"stock"`
	Rating           float64         `gorm:"default:0" json:"rating"`
	ReorderThreshold int             `gorm:"not null;default:10" json:"reorder_threshold"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.SKU) == "" {
		return errors.New("sku is required")
	}

	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}

	if p.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}

	if p.Stock < 0 {
		return errors.New("stock cannot be negative")
	}

	if p.Rating < 0 || p.Rating > MaxProductRating {
		return errors.New("rating must be between 0 and 5")
	}

	return nil
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p *Product) NeedsReorder() bool {
	return p.Stock <= p.ReorderThreshold
}

func (p *Product) TableName() string {
	return "products"
}
