package domain

import (
	"time"

	"github.com/google/uuid"
)

// Purchase groups line items bought together. Owned by a company; the claim
// core reads it only to resolve bulk evidence links and report sums.
type Purchase struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	TotalCents int64     `json:"total_cents" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Purchase) TableName() string { return "purchases" }
