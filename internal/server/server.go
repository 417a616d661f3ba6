package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reliefdesk/reliefdesk/internal/audit"
	auditdomain "github.com/reliefdesk/reliefdesk/internal/audit/domain"
	"github.com/reliefdesk/reliefdesk/internal/claim"
	claimdomain "github.com/reliefdesk/reliefdesk/internal/claim/domain"
	"github.com/reliefdesk/reliefdesk/internal/claimreport"
	reportdomain "github.com/reliefdesk/reliefdesk/internal/claimreport/domain"
	"github.com/reliefdesk/reliefdesk/internal/company"
	"github.com/reliefdesk/reliefdesk/internal/config"
	"github.com/reliefdesk/reliefdesk/internal/evidencelink"
	"github.com/reliefdesk/reliefdesk/internal/femadisaster"
	femadomain "github.com/reliefdesk/reliefdesk/internal/femadisaster/domain"
	"github.com/reliefdesk/reliefdesk/internal/insurancepolicy"
	"github.com/reliefdesk/reliefdesk/internal/invoice"
	"github.com/reliefdesk/reliefdesk/internal/observability"
	obsmiddleware "github.com/reliefdesk/reliefdesk/internal/observability/logger"
	obsmetrics "github.com/reliefdesk/reliefdesk/internal/observability/metrics"
	obstracing "github.com/reliefdesk/reliefdesk/internal/observability/tracing"
	"github.com/reliefdesk/reliefdesk/internal/purchase"
	"github.com/reliefdesk/reliefdesk/internal/purchaselineitem"
	"github.com/reliefdesk/reliefdesk/internal/ratelimit"
	"github.com/reliefdesk/reliefdesk/internal/selfdisaster"
	selfdomain "github.com/reliefdesk/reliefdesk/internal/selfdisaster/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	company.Module,
	femadisaster.Module,
	selfdisaster.Module,
	insurancepolicy.Module,
	purchase.Module,
	purchaselineitem.Module,
	invoice.Module,
	evidencelink.Module,
	claim.Module,
	claimreport.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware(obsCfg.ServiceName))
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	claimSvc        claimdomain.Service
	reportSvc       reportdomain.Service
	selfDisasterSvc selfdomain.Service
	femaRepo        femadomain.Repository
	auditSvc        auditdomain.Service
	reportLimiter   *ratelimit.ReportLimiter
	metrics         *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	ClaimSvc        claimdomain.Service
	ReportSvc       reportdomain.Service
	SelfDisasterSvc selfdomain.Service
	FemaRepo        femadomain.Repository
	AuditSvc        auditdomain.Service
	ReportLimiter   *ratelimit.ReportLimiter `optional:"true"`
	Metrics         *obsmetrics.Metrics      `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		claimSvc:        p.ClaimSvc,
		reportSvc:       p.ReportSvc,
		selfDisasterSvc: p.SelfDisasterSvc,
		femaRepo:        p.FemaRepo,
		auditSvc:        p.AuditSvc,
		reportLimiter:   p.ReportLimiter,
		metrics:         p.Metrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.CompanyContext())

	claims := api.Group("/claims")
	claims.POST("", s.CreateClaim)
	claims.GET("", s.ListClaims)
	claims.GET("/in-progress", s.GetInProgressClaim)
	claims.GET("/:id", s.GetClaim)
	claims.PATCH("/:id/status", s.UpdateClaimStatus)
	claims.DELETE("/:id", s.DeleteClaim)
	claims.POST("/:id/line-items/:lineItemId", s.LinkLineItem)
	claims.DELETE("/:id/line-items/:lineItemId", s.UnlinkLineItem)
	claims.GET("/:id/line-items", s.ListLinkedLineItems)
	claims.POST("/:id/purchases/:purchaseId/line-items", s.LinkPurchaseLineItems)
	claims.GET("/:id/report", s.GetClaimReport)

	api.POST("/self-disasters", s.CreateSelfDisaster)
	api.GET("/fema-disasters", s.ListFemaDisasters)
	api.GET("/fema-disasters/:id", s.GetFemaDisaster)

	api.GET("/audit-logs", s.ListAuditLogs)
}
