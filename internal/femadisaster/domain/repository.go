package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*FemaDisaster, error)
	List(ctx context.Context, db *gorm.DB, limit int) ([]FemaDisaster, error)
}
