package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	companydomain "github.com/reliefdesk/reliefdesk/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() companydomain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*companydomain.Company, error) {
	var company companydomain.Company
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}
