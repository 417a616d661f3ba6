package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	SumAmountForCompany(ctx context.Context, db *gorm.DB, companyID uuid.UUID, from, to time.Time) (int64, error)
}
