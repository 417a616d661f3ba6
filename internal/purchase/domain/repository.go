package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	SumTotalForCompany(ctx context.Context, db *gorm.DB, companyID uuid.UUID, from, to time.Time) (int64, error)
}
