package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	femadomain "github.com/reliefdesk/reliefdesk/internal/femadisaster/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() femadomain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*femadomain.FemaDisaster, error) {
	var disaster femadomain.FemaDisaster
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&disaster).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disaster, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, limit int) ([]femadomain.FemaDisaster, error) {
	if limit <= 0 || limit > 250 {
		limit = 100
	}
	var disasters []femadomain.FemaDisaster
	err := db.WithContext(ctx).
		Order("declaration_date DESC").
		Limit(limit).
		Find(&disasters).Error
	if err != nil {
		return nil, err
	}
	return disasters, nil
}
