package domain

import (
	"context"

	"github.com/google/uuid"
	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	"gorm.io/gorm"
)

// Repository manages bridge rows. Link and LinkAll are idempotent: an
// existing pair is left untouched, never reported as a conflict. Unlink of
// an absent pair is a no-op success.
type Repository interface {
	Link(ctx context.Context, db *gorm.DB, link ClaimEvidenceLink) error
	LinkAll(ctx context.Context, db *gorm.DB, links []ClaimEvidenceLink) error
	Unlink(ctx context.Context, db *gorm.DB, claimID, itemID uuid.UUID) error
	UnlinkAllForClaim(ctx context.Context, db *gorm.DB, claimID uuid.UUID) error
	ListItemsByClaim(ctx context.Context, db *gorm.DB, claimID uuid.UUID) ([]itemdomain.PurchaseLineItem, error)
}
