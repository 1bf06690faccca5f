package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/config"
	importerdomain "github.com/strideworks/paceline/internal/importer/domain"
	obslogger "github.com/strideworks/paceline/internal/observability/logger"
	obsmetrics "github.com/strideworks/paceline/internal/observability/metrics"
	statsdomain "github.com/strideworks/paceline/internal/stats/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug: !cfg.IsProduction(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("address", cfg.HTTPAddress))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
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
	log         *zap.Logger
	importSvc   importerdomain.Service
	activitySvc activitydomain.Service
	statsSvc    statsdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	ImportSvc   importerdomain.Service
	ActivitySvc activitydomain.Service
	StatsSvc    statsdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		importSvc:   p.ImportSvc,
		activitySvc: p.ActivitySvc,
		statsSvc:    p.StatsSvc,
	}

	svc.registerImportRoutes()
	svc.registerActivityRoutes()
	svc.registerStatisticsRoutes()

	return svc
}

func (s *Server) registerImportRoutes() {
	group := s.engine.Group("/api/import")
	group.POST("/upload", s.UploadImport)
	group.GET("/records", s.ListImportRecords)
	group.DELETE("/records/:id", s.DeleteImportRecord)
}

func (s *Server) registerActivityRoutes() {
	group := s.engine.Group("/api/activities")
	group.GET("", s.ListActivities)
	group.GET("/count", s.CountActivities)
	group.GET("/:id", s.GetActivity)
	group.DELETE("/:id", s.DeleteActivity)
}

func (s *Server) registerStatisticsRoutes() {
	group := s.engine.Group("/api/statistics")
	group.GET("/overall", s.OverallStatistics)
	group.GET("/date-range", s.DateRangeStatistics)
	group.GET("/by-type", s.ByTypeStatistics)
	group.GET("/recent", s.RecentActivities)
	group.GET("/trend/monthly", s.MonthlyTrend)
	group.GET("/heart-rate-zones", s.HeartRateZones)
	group.GET("/pace-zones", s.PaceZones)
}
