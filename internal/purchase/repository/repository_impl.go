package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	purchasedomain "github.com/reliefdesk/reliefdesk/internal/purchase/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() purchasedomain.Repository {
	return &repo{}
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&purchasedomain.Purchase{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) SumTotalForCompany(ctx context.Context, db *gorm.DB, companyID uuid.UUID, from, to time.Time) (int64, error) {
	var total *int64
	err := db.WithContext(ctx).
		Model(&purchasedomain.Purchase{}).
		Select("SUM(total_cents)").
		Where("company_id = ? AND created_at >= ? AND created_at < ?", companyID, from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
