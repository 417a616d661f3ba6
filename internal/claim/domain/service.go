package domain

import (
	"context"
	"errors"
	"time"

	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	"github.com/reliefdesk/reliefdesk/pkg/db/pagination"
)

// Service covers claim lifecycle and evidence linking. The owning company
// is always taken from the request context, never from caller input.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
	InProgress(ctx context.Context) (*Response, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Response, error)

	LinkLineItem(ctx context.Context, claimID, itemID string) (*LinkResponse, error)
	LinkPurchaseItems(ctx context.Context, claimID, purchaseID string) ([]LinkResponse, error)
	LinkedLineItems(ctx context.Context, claimID string) ([]LineItemResponse, error)
	UnlinkLineItem(ctx context.Context, claimID, itemID string) (*LinkResponse, error)
}

type CreateRequest struct {
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	FemaDisasterID    *string `json:"fema_disaster_id,omitempty"`
	SelfDisasterID    *string `json:"self_disaster_id,omitempty"`
	InsurancePolicyID *string `json:"insurance_policy_id,omitempty"`
}

type ListRequest struct {
	pagination.Pagination

	CreatedFrom  string `form:"created_from"`
	CreatedTo    string `form:"created_to"`
	NameContains string `form:"q"`
}

type UpdateStatusRequest struct {
	Status            string  `json:"status"`
	InsurancePolicyID *string `json:"insurance_policy_id,omitempty"`
}

// Response is the wire shape of a claim. Timestamps are RFC3339 strings and
// absent associations are omitted, not null.
type Response struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	CompanyID         string  `json:"company_id"`
	FemaDisasterID    *string `json:"fema_disaster_id,omitempty"`
	SelfDisasterID    *string `json:"self_disaster_id,omitempty"`
	InsurancePolicyID *string `json:"insurance_policy_id,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`

	FemaDisaster    *FemaDisasterResponse    `json:"fema_disaster,omitempty"`
	SelfDisaster    *SelfDisasterResponse    `json:"self_disaster,omitempty"`
	InsurancePolicy *InsurancePolicyResponse `json:"insurance_policy,omitempty"`
}

type FemaDisasterResponse struct {
	ID                      string  `json:"id"`
	DisasterNumber          int     `json:"disaster_number"`
	DeclarationDate         string  `json:"declaration_date"`
	IncidentBeginDate       *string `json:"incident_begin_date,omitempty"`
	IncidentEndDate         *string `json:"incident_end_date,omitempty"`
	DesignatedArea          string  `json:"designated_area"`
	DesignatedIncidentTypes string  `json:"designated_incident_types"`
}

type SelfDisasterResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

type InsurancePolicyResponse struct {
	ID            string  `json:"id"`
	Provider      string  `json:"provider"`
	PolicyNumber  string  `json:"policy_number"`
	CoverageStart *string `json:"coverage_start,omitempty"`
	CoverageEnd   *string `json:"coverage_end,omitempty"`
}

type ListResponse struct {
	Claims   []Response           `json:"claims"`
	PageInfo *pagination.PageInfo `json:"page_info"`
}

type DeleteResponse struct {
	ID string `json:"id"`
}

type LinkResponse struct {
	ClaimID            string `json:"claim_id"`
	PurchaseLineItemID string `json:"purchase_line_item_id"`
}

type LineItemResponse struct {
	ID                    string  `json:"id"`
	PurchaseID            string  `json:"purchase_id"`
	Description           *string `json:"description,omitempty"`
	AmountCents           int64   `json:"amount_cents"`
	Category              *string `json:"category,omitempty"`
	Type                  string  `json:"type"`
	QuickBooksID          *string `json:"quickbooks_id,omitempty"`
	QuickBooksDateCreated *string `json:"quickbooks_date_created,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

var (
	ErrNotFound         = errors.New("not_found")
	ErrClaimInProgress  = errors.New("claim_in_progress")
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidStatus    = errors.New("invalid_status")
	ErrDisasterRequired = errors.New("disaster_required")
	ErrDisasterConflict = errors.New("disaster_conflict")
	ErrMissingCompany   = errors.New("missing_company")
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidDateRange = errors.New("invalid_date_range")
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// ToResponse shapes a claim for the wire. Association objects appear only
// when resolved on the entity.
func ToResponse(c *Claim) *Response {
	resp := &Response{
		ID:        c.ID.String(),
		Name:      c.Name,
		Status:    string(c.Status),
		CompanyID: c.CompanyID.String(),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}

	if c.FemaDisasterID != nil {
		id := c.FemaDisasterID.String()
		resp.FemaDisasterID = &id
	}
	if c.SelfDisasterID != nil {
		id := c.SelfDisasterID.String()
		resp.SelfDisasterID = &id
	}
	if c.InsurancePolicyID != nil {
		id := c.InsurancePolicyID.String()
		resp.InsurancePolicyID = &id
	}

	if c.FemaDisaster != nil {
		resp.FemaDisaster = &FemaDisasterResponse{
			ID:                      c.FemaDisaster.ID.String(),
			DisasterNumber:          c.FemaDisaster.DisasterNumber,
			DeclarationDate:         formatTime(c.FemaDisaster.DeclarationDate),
			IncidentBeginDate:       formatTimePtr(c.FemaDisaster.IncidentBeginDate),
			IncidentEndDate:         formatTimePtr(c.FemaDisaster.IncidentEndDate),
			DesignatedArea:          c.FemaDisaster.DesignatedArea,
			DesignatedIncidentTypes: c.FemaDisaster.DesignatedIncidentTypes,
		}
	}
	if c.SelfDisaster != nil {
		resp.SelfDisaster = &SelfDisasterResponse{
			ID:          c.SelfDisaster.ID.String(),
			Description: c.SelfDisaster.Description,
			StartDate:   formatTime(c.SelfDisaster.StartDate),
			EndDate:     formatTimePtr(c.SelfDisaster.EndDate),
		}
	}
	if c.InsurancePolicy != nil {
		resp.InsurancePolicy = &InsurancePolicyResponse{
			ID:            c.InsurancePolicy.ID.String(),
			Provider:      c.InsurancePolicy.Provider,
			PolicyNumber:  c.InsurancePolicy.PolicyNumber,
			CoverageStart: formatTimePtr(c.InsurancePolicy.CoverageStart),
			CoverageEnd:   formatTimePtr(c.InsurancePolicy.CoverageEnd),
		}
	}

	return resp
}

// ToLineItemResponse shapes an evidence item for the wire.
func ToLineItemResponse(item *itemdomain.PurchaseLineItem) LineItemResponse {
	return LineItemResponse{
		ID:                    item.ID.String(),
		PurchaseID:            item.PurchaseID.String(),
		Description:           item.Description,
		AmountCents:           item.AmountCents,
		Category:              item.Category,
		Type:                  string(item.Type),
		QuickBooksID:          item.QuickBooksID,
		QuickBooksDateCreated: formatTimePtr(item.QuickBooksDateCreated),
		CreatedAt:             formatTime(item.CreatedAt),
		UpdatedAt:             formatTime(item.UpdatedAt),
	}
}
