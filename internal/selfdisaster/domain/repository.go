package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, disaster *SelfDeclaredDisaster) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*SelfDeclaredDisaster, error)
}
