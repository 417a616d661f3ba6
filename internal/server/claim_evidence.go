package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/reliefdesk/reliefdesk/internal/audit/domain"
)

func (s *Server) LinkLineItem(c *gin.Context) {
	claimID := strings.TrimSpace(c.Param("id"))
	itemID := strings.TrimSpace(c.Param("lineItemId"))

	resp, err := s.claimSvc.LinkLineItem(c.Request.Context(), claimID, itemID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), auditdomain.ActionClaimLink, "claim", &resp.ClaimID, map[string]any{
			"purchase_line_item_id": resp.PurchaseLineItemID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UnlinkLineItem removes a link if present. Removing a link that does not
// exist succeeds with the same payload, so retries are safe.
func (s *Server) UnlinkLineItem(c *gin.Context) {
	claimID := strings.TrimSpace(c.Param("id"))
	itemID := strings.TrimSpace(c.Param("lineItemId"))

	resp, err := s.claimSvc.UnlinkLineItem(c.Request.Context(), claimID, itemID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), auditdomain.ActionClaimUnlink, "claim", &resp.ClaimID, map[string]any{
			"purchase_line_item_id": resp.PurchaseLineItemID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) LinkPurchaseLineItems(c *gin.Context) {
	claimID := strings.TrimSpace(c.Param("id"))
	purchaseID := strings.TrimSpace(c.Param("purchaseId"))

	resp, err := s.claimSvc.LinkPurchaseItems(c.Request.Context(), claimID, purchaseID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.Record(c.Request.Context(), auditdomain.ActionClaimLink, "claim", &claimID, map[string]any{
			"purchase_id": purchaseID,
			"link_count":  len(resp),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLinkedLineItems(c *gin.Context) {
	claimID := strings.TrimSpace(c.Param("id"))

	resp, err := s.claimSvc.LinkedLineItems(c.Request.Context(), claimID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
