package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recommendation sources, reported to callers as the winning source label
const (
	SourceManual           = "manual"
	SourceMLPredicted      = "ml_predicted"
	SourceProfile          = "profile"
	SourceAssociationRules = "association_rules"
	SourceFallback         = "fallback"
)

// Stages of the recommendation cascade, in precedence order
const (
	StageManual           = "manual"
	StageMLPredicted      = "ml_predicted"
	StageProfile          = "profile"
	StageAssociationRules = "association_rules"
	StageCategoryFallback = "category_fallback"
	StageGenericFallback  = "generic_fallback"
)

// ReasonPrecomputed marks rows written by the precompute job. The winning
// source is appended after a colon, as in "precomputed:profile".
const ReasonPrecomputed = "precomputed"

// PrecomputedReason is the Reason stored for a row the cascade won with source
func PrecomputedReason(source string) string {
	if source == "" {
		return ReasonPrecomputed
	}
	return ReasonPrecomputed + ":" + source
}

// AllStages returns the cascade stages in the order they are evaluated
func AllStages() []string {
	return []string{
		StageManual,
		StageMLPredicted,
		StageProfile,
		StageAssociationRules,
		StageCategoryFallback,
		StageGenericFallback,
	}
}

// Recommendation is a stored, per-customer recommendation row. Rows are written
// by merchandisers or by the background precompute job.
type Recommendation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Reason      string    `gorm:"type:varchar(255)" json:"reason,omitempty"`
	GeneratedAt time.Time `gorm:"not null;index" json:"generated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// Precomputed reports whether the row was written by the precompute job and,
// when recorded, the source that produced it.
func (r *Recommendation) Precomputed() (source string, ok bool) {
	if r.Reason == ReasonPrecomputed {
		return "", true
	}
	source, ok = strings.CutPrefix(r.Reason, ReasonPrecomputed+":")
	return source, ok
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}
	if r.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}
	if r.ProductID == uuid.Nil {
		return errors.New("product ID is required")
	}
	return nil
}

func (r *Recommendation) TableName() string {
	return "recommendations"
}

// StageAttempt records what one stage of the cascade produced
type StageAttempt struct {
	Stage      string `json:"stage"`
	Source     string `json:"source"`
	Category   string `json:"category,omitempty"`
	Candidates int    `json:"candidates"`
	Accepted   int    `json:"accepted"`
	Skipped    string `json:"skipped,omitempty"`
}

// RecommendationResult is the outcome of one recommendation resolution
type RecommendationResult struct {
	Products []Product      `json:"products"`
	Source   string         `json:"source"`
	Stage    string         `json:"stage"`
	Category string         `json:"category,omitempty"`
	Attempts []StageAttempt `json:"attempts,omitempty"`
}

// SKUs returns the SKUs of the recommended products in order
func (r *RecommendationResult) SKUs() []string {
	if r == nil {
		return nil
	}
	skus := make([]string, 0, len(r.Products))
	for _, p := range r.Products {
		skus = append(skus, p.SKU)
	}
	return skus
}
