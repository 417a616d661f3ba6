package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListByPurchase(ctx context.Context, db *gorm.DB, purchaseID uuid.UUID) ([]PurchaseLineItem, error)
	Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
}
