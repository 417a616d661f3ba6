package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
)

// HeaderCompany carries the authenticated company for the request. In a full
// deployment this is set by the auth gateway after verifying the session.
const HeaderCompany = "X-Company-ID"

// CompanyContext resolves the company from the request header and stores it
// in the request context. Requests without a valid company are rejected
// before any handler runs.
func (s *Server) CompanyContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderCompany))
		if raw == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		companyID, err := uuid.Parse(raw)
		if err != nil || companyID == uuid.Nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ctx := companyctx.WithCompanyID(c.Request.Context(), companyID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
