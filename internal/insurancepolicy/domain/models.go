package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsurancePolicy is a company's coverage record. Claims may reference one
// policy; the claim core reads policies only for response shaping.
type InsurancePolicy struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Provider      string     `json:"provider" gorm:"type:text;not null"`
	PolicyNumber  string     `json:"policy_number" gorm:"type:text;not null"`
	CoverageStart *time.Time `json:"coverage_start,omitempty"`
	CoverageEnd   *time.Time `json:"coverage_end,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (InsurancePolicy) TableName() string { return "insurance_policies" }
