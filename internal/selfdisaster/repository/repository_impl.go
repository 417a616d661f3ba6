package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	selfdomain "github.com/reliefdesk/reliefdesk/internal/selfdisaster/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() selfdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, disaster *selfdomain.SelfDeclaredDisaster) error {
	return db.WithContext(ctx).Create(disaster).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*selfdomain.SelfDeclaredDisaster, error) {
	var disaster selfdomain.SelfDeclaredDisaster
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
