package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClaimEvidenceLink is one row of the claim-to-evidence bridge. Modeled as
// its own entity so the association is queryable from either endpoint
// instead of navigating a one-sided ORM relation.
type ClaimEvidenceLink struct {
	ClaimID            uuid.UUID `json:"claim_id" gorm:"type:uuid;primaryKey"`
	PurchaseLineItemID uuid.UUID `json:"purchase_line_item_id" gorm:"type:uuid;primaryKey"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ClaimEvidenceLink) TableName() string { return "claim_evidence_links" }
