package domain

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a line item for claim eligibility. The SUGGESTED_*
// values are machine-proposed classifications awaiting user confirmation.
type Type string

const (
	TypeTypical             Type = "TYPICAL"
	TypeExtraneous          Type = "EXTRANEOUS"
	TypePending             Type = "PENDING"
	TypeSuggestedTypical    Type = "SUGGESTED_TYPICAL"
	TypeSuggestedExtraneous Type = "SUGGESTED_EXTRANEOUS"
)

// PurchaseLineItem is an expense record owned by a Purchase. The claim core
// never mutates line items, it only links them as evidence.
type PurchaseLineItem struct {
	ID                    uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	PurchaseID            uuid.UUID  `json:"purchase_id" gorm:"type:uuid;not null;index"`
	Description           *string    `json:"description,omitempty" gorm:"type:text"`
	AmountCents           int64      `json:"amount_cents" gorm:"not null"`
	Category              *string    `json:"category,omitempty" gorm:"type:text"`
	Type                  Type       `json:"type" gorm:"type:text;not null;default:PENDING"`
	QuickBooksID          *string    `json:"quickbooks_id,omitempty" gorm:"column:quickbooks_id;type:text"`
	QuickBooksDateCreated *time.Time `json:"quickbooks_date_created,omitempty" gorm:"column:quickbooks_date_created"`
	CreatedAt             time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt             time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (PurchaseLineItem) TableName() string { return "purchase_line_items" }
