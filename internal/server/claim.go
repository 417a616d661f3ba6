package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/reliefdesk/reliefdesk/internal/audit/domain"
	claimdomain "github.com/reliefdesk/reliefdesk/internal/claim/domain"
)

func (s *Server) CreateClaim(c *gin.Context) {
	var req claimdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Status = strings.TrimSpace(req.Status)

	resp, err := s.claimSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), auditdomain.ActionClaimCreate, "claim", &resp.ID, map[string]any{
			"status": resp.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListClaims(c *gin.Context) {
	var req claimdomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.claimSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetClaim(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.claimSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetInProgressClaim returns the company's open claim, or a null data field
// when the company has none. No claim is not an error here.
func (s *Server) GetInProgressClaim(c *gin.Context) {
	resp, err := s.claimSvc.InProgress(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateClaimStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req claimdomain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.Status = strings.TrimSpace(req.Status)

	resp, err := s.claimSvc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), auditdomain.ActionClaimStatus, "claim", &resp.ID, map[string]any{
			"status": resp.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteClaim(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.claimSvc.Delete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), auditdomain.ActionClaimDelete, "claim", &resp.ID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
