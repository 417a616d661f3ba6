package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/reliefdesk/reliefdesk/internal/audit/domain"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
)

// GetClaimReport renders the claim report PDF. Rendering is throttled per
// company and serialized per claim so a burst of identical requests cannot
// stack up concurrent renders of the same document.
func (s *Server) GetClaimReport(c *gin.Context) {
	ctx := c.Request.Context()
	claimID := strings.TrimSpace(c.Param("id"))

	if s.reportLimiter.Enabled() {
		companyID, ok := companyctx.CompanyIDFromContext(ctx)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		result, err := s.reportLimiter.AllowCompany(ctx, companyID.String())
		if err != nil {
			AbortWithError(c, ErrServiceUnavailable)
			return
		}
		if !result.Allowed {
			s.metrics.RecordRateLimitDenied(ctx, "claim_report", "rate")
			if result.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())+1))
			}
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		s.metrics.RecordRateLimitAllowed(ctx, "claim_report")

		token, locked, err := s.reportLimiter.TryLockClaim(ctx, claimID)
		if err != nil {
			AbortWithError(c, ErrServiceUnavailable)
			return
		}
		if !locked {
			s.metrics.RecordRateLimitDenied(ctx, "claim_report", "render_lock")
			c.Header("Retry-After", "5")
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		defer func() {
			_ = s.reportLimiter.ReleaseClaim(ctx, claimID, token)
		}()
	}

	data, err := s.reportSvc.BuildReportData(ctx, claimID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	pdf, err := s.reportSvc.Render(data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(ctx, auditdomain.ActionClaimReport, "claim", &data.ClaimID, nil)
	}

	c.Header("Content-Disposition", `attachment; filename="claim-report-`+data.ClaimID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
