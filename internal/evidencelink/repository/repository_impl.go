package repository

import (
	"context"

	"github.com/google/uuid"
	linkdomain "github.com/reliefdesk/reliefdesk/internal/evidencelink/domain"
	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() linkdomain.Repository {
	return &repo{}
}

func (r *repo) Link(ctx context.Context, db *gorm.DB, link linkdomain.ClaimEvidenceLink) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

func (r *repo) LinkAll(ctx context.Context, db *gorm.DB, links []linkdomain.ClaimEvidenceLink) error {
	if len(links) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

func (r *repo) UnlinkAllForClaim(ctx context.Context, db *gorm.DB, claimID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Delete(&linkdomain.ClaimEvidenceLink{}).Error
}

func (r *repo) Unlink(ctx context.Context, db *gorm.DB, claimID, itemID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("claim_id = ? AND purchase_line_item_id = ?", claimID, itemID).
		Delete(&linkdomain.ClaimEvidenceLink{}).Error
}

func (r *repo) ListItemsByClaim(ctx context.Context, db *gorm.DB, claimID uuid.UUID) ([]itemdomain.PurchaseLineItem, error) {
	var items []itemdomain.PurchaseLineItem
	err := db.WithContext(ctx).
		Model(&itemdomain.PurchaseLineItem{}).
		Joins("JOIN claim_evidence_links cel ON cel.purchase_line_item_id = purchase_line_items.id").
		Where("cel.claim_id = ?", claimID).
		Order("purchase_line_items.created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
