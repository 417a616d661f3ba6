package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is a revenue record imported from the company's accounting feed.
// The claim report sums invoices per year to establish pre-disaster income.
type Invoice struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	AmountCents int64     `json:"amount_cents" gorm:"not null"`
	InvoiceDate time.Time `json:"invoice_date" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
