package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	invoicedomain "github.com/reliefdesk/reliefdesk/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() invoicedomain.Repository {
	return &repo{}
}

func (r *repo) SumAmountForCompany(ctx context.Context, db *gorm.DB, companyID uuid.UUID, from, to time.Time) (int64, error) {
	var total *int64
	err := db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Select("SUM(amount_cents)").
		Where("company_id = ? AND invoice_date >= ? AND invoice_date < ?", companyID, from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
