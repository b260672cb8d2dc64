package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hillcosite/priceguide/internal/audit"
	auditdomain "github.com/hillcosite/priceguide/internal/audit/domain"
	"github.com/hillcosite/priceguide/internal/catalog"
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"github.com/hillcosite/priceguide/internal/clock"
	"github.com/hillcosite/priceguide/internal/config"
	"github.com/hillcosite/priceguide/internal/notify"
	obsmetrics "github.com/hillcosite/priceguide/internal/observability/metrics"
	"github.com/hillcosite/priceguide/internal/pipeline"
	pipelinedomain "github.com/hillcosite/priceguide/internal/pipeline/domain"
	"github.com/hillcosite/priceguide/internal/rate"
	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	audit.Module,
	catalog.Module,
	rate.Module,
	notify.Module,
	pipeline.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterRoutes()
	}),
	fx.Invoke(RunHTTP),
)

func NewEngine(log *zap.Logger, metrics *obsmetrics.PipelineMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLoggingMiddleware(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return r
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
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
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	pipelineSvc pipelinedomain.Service
	catalogSvc  catalogdomain.Service
	rateSvc     ratedomain.Service
	auditSvc    auditdomain.Service
}

type ServerParams struct {
	fx.In

	Engine      *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	PipelineSvc pipelinedomain.Service
	CatalogSvc  catalogdomain.Service
	RateSvc     ratedomain.Service
	AuditSvc    auditdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Engine,
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("http.server"),
		clock:       p.Clock,
		pipelineSvc: p.PipelineSvc,
		catalogSvc:  p.CatalogSvc,
		rateSvc:     p.RateSvc,
		auditSvc:    p.AuditSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterRoutes() {
	v1 := s.engine.Group("/v1")

	automation := v1.Group("/automation")
	automation.GET("/inflation", s.RunInflation)
	automation.POST("/inflation", s.RunInflation)
	automation.GET("/logs", s.ListAutomationLogs)

	pricing := v1.Group("/pricing")
	pricing.GET("/entries", s.ListPricingEntries)

	v1.GET("/rates", s.ListRates)
}
