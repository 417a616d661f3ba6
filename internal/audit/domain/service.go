package domain

import (
	"context"
	"errors"
	"time"

	"github.com/reliefdesk/reliefdesk/pkg/db/pagination"
)

// Actions recorded against claims.
const (
	ActionClaimCreate = "claim.create"
	ActionClaimDelete = "claim.delete"
	ActionClaimStatus = "claim.status"
	ActionClaimLink   = "claim.link"
	ActionClaimUnlink = "claim.unlink"
	ActionClaimReport = "claim.report"
)

type ListAuditLogRequest struct {
	pagination.Pagination
	Action     string `form:"action"`
	TargetType string `form:"target_type"`
	TargetID   string `form:"target_id"`
	StartAt    *time.Time
	EndAt      *time.Time
}

type ListAuditLogResponse struct {
	pagination.PageInfo
	AuditLogs []AuditLog `json:"audit_logs"`
}

// Service records and lists the audit trail. Record is best-effort for
// callers: failures are logged, never escalated into the request path.
type Service interface {
	Record(ctx context.Context, action, targetType string, targetID *string, metadata map[string]any) error
	List(ctx context.Context, req ListAuditLogRequest) (ListAuditLogResponse, error)
}

var (
	ErrInvalidCompany   = errors.New("invalid_company")
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidTimeRange = errors.New("invalid_time_range")
	ErrInvalidAction    = errors.New("invalid_action")
)
