package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
}

type CreateRequest struct {
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

type Response struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

var (
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrMissingCompany     = errors.New("missing_company")
)

func ToResponse(d *SelfDeclaredDisaster) *Response {
	resp := &Response{
		ID:          d.ID.String(),
		CompanyID:   d.CompanyID.String(),
		Description: d.Description,
		StartDate:   d.StartDate.UTC().Format(time.RFC3339),
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
	if d.EndDate != nil {
		end := d.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}
