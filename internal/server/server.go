package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/lockerdocs/internal/clock"
	"github.com/smallbiznis/lockerdocs/internal/config"
	contractdomain "github.com/smallbiznis/lockerdocs/internal/contract/domain"
	"github.com/smallbiznis/lockerdocs/internal/observability/logger"
	"github.com/smallbiznis/lockerdocs/internal/observability/metrics"
	"github.com/smallbiznis/lockerdocs/internal/observability/tracing"
	"github.com/smallbiznis/lockerdocs/internal/session"
)

type Params struct {
	fx.In

	Cfg         config.Config
	Log         *zap.Logger
	DB          *gorm.DB
	Clock       clock.Clock
	ContractSvc contractdomain.Service
	HTTPMetrics *metrics.HTTPMetrics `optional:"true"`
}

type Server struct {
	cfg         config.Config
	log         *zap.Logger
	db          *gorm.DB
	clock       clock.Clock
	contractSvc contractdomain.Service
	httpMetrics *metrics.HTTPMetrics
	sessions    *session.Manager
	renderLimit *rateLimiter
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		db:          p.DB,
		clock:       p.Clock,
		contractSvc: p.ContractSvc,
		httpMetrics: p.HTTPMetrics,
		sessions: session.NewManager(session.Config{
			CookieName: p.Cfg.Session.CookieName,
			TTL:        p.Cfg.Session.TTL,
			Secure:     p.Cfg.Session.Secure,
			SameSite:   p.Cfg.Session.SameSite,
			Path:       p.Cfg.Session.Path,
			Domain:     p.Cfg.Session.Domain,
		}),
		renderLimit: newRateLimiter(30, time.Minute),
	}
}

// Router assembles the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(tracing.GinMiddleware("lockerdocs"))
	r.Use(metrics.GinMiddleware(s.httpMetrics))
	r.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz", "/metrics"}}))
	r.Use(s.KioskSession())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/contracts", s.CreateContract)
		v1.GET("/contracts/:id", s.GetContract)
		v1.POST("/contracts/:id/payments", s.RecordPayment)
		v1.GET("/contracts/:id/document", s.RenderContractDocument)

		v1.POST("/kiosk/session", s.OpenKioskSession)
		v1.DELETE("/kiosk/session", s.CloseKioskSession)
	}
	return r
}

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(Run),
)

// Run starts the HTTP listener on the fx lifecycle.
func Run(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
