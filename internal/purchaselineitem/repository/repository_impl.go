package repository

import (
	"context"

	"github.com/google/uuid"
	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() itemdomain.Repository {
	return &repo{}
}

func (r *repo) ListByPurchase(ctx context.Context, db *gorm.DB, purchaseID uuid.UUID) ([]itemdomain.PurchaseLineItem, error) {
	var items []itemdomain.PurchaseLineItem
	err := db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&itemdomain.PurchaseLineItem{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
