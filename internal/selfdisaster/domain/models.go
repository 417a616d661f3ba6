package domain

import (
	"time"

	"github.com/google/uuid"
)

// SelfDeclaredDisaster is a company-declared disaster event with no federal
// declaration backing it. Created during the claim declare flow and then
// referenced by the claim.
type SelfDeclaredDisaster struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Description string     `json:"description" gorm:"type:text;not null"`
	StartDate   time.Time  `json:"start_date" gorm:"not null"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (SelfDeclaredDisaster) TableName() string { return "self_declared_disasters" }
