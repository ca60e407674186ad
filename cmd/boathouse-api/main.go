package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ccbc-ox/boathouse-api/api/swagger"
	"github.com/ccbc-ox/boathouse-api/internal/flags"
	"github.com/ccbc-ox/boathouse-api/internal/handler"
	"github.com/ccbc-ox/boathouse-api/internal/middleware"
	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/notion"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	"github.com/ccbc-ox/boathouse-api/internal/statecache"
	"github.com/ccbc-ox/boathouse-api/pkg/cache"
	"github.com/ccbc-ox/boathouse-api/pkg/config"
	"github.com/ccbc-ox/boathouse-api/pkg/logger"
	corsmiddleware "github.com/ccbc-ox/boathouse-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ccbc-ox/boathouse-api/pkg/middleware/requestid"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

// @title Boathouse API
// @version 1.0.0
// @description Club roster, outings, coxing and river status over Notion
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	notionClient := notion.NewClient(cfg.Notion, logr, metricsSvc)
	flagClient := flags.NewClient(cfg.Flags, logr)

	cacheOpts := resourcecache.Options{Logger: logr, Observer: metricsSvc}
	membersCache := resourcecache.NewList("members", cfg.Cache.MembersTTL, notionClient.Members,
		func(m models.Member) string { return m.ID }, cacheOpts)
	outingsCache := resourcecache.NewList("outings", cfg.Cache.OutingsTTL,
		func(ctx context.Context) ([]models.Outing, error) {
			return notionClient.Outings(ctx, time.Time{}, time.Time{})
		},
		func(o models.Outing) string { return o.ID }, cacheOpts)
	testsCache := resourcecache.NewList("tests", cfg.Cache.TestsTTL, notionClient.Tests,
		func(tt models.Test) string { return tt.ID }, cacheOpts)
	eventsCache := resourcecache.NewList("events", cfg.Cache.EventsTTL, notionClient.Events,
		func(e models.Event) string { return e.ID }, cacheOpts)
	flagCache := resourcecache.New("flag", cfg.Flags.CacheTTL, flagClient.Current, cacheOpts)

	assignmentStore, broadcaster, closeStore, err := buildAssignmentBackend(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init assignment store", "error", err)
	}
	defer closeStore()

	memberSvc := service.NewMemberService(notionClient, membersCache, validate, logr)
	availabilitySvc := service.NewAvailabilityService(notionClient, logr)
	outingSvc := service.NewOutingService(notionClient, outingsCache, validate, logr)
	testSvc := service.NewTestService(notionClient, testsCache, validate, logr)
	eventSvc := service.NewEventService(notionClient, eventsCache, logr)
	flagSvc := service.NewFlagService(flagCache, logr)
	assignmentSvc := service.NewAssignmentService(assignmentStore, broadcaster, logr)
	coxingSvc := service.NewCoxingService(notionClient, memberSvc, flagSvc, availabilitySvc, validate, logr)
	exportSvc := service.NewExportService(outingSvc, memberSvc, availabilitySvc, logr, nil, nil)

	memberHandler := handler.NewMemberHandler(memberSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	outingHandler := handler.NewOutingHandler(outingSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	testHandler := handler.NewTestHandler(testSvc)
	coxingHandler := handler.NewCoxingHandler(coxingSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	flagHandler := handler.NewFlagHandler(flagSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/members", memberHandler.List)
		api.POST("/members", memberHandler.Create)
		api.GET("/members/:id", memberHandler.Get)
		api.GET("/members/:id/availability", availabilityHandler.Get)
		api.PUT("/members/:id/availability", availabilityHandler.Update)

		api.GET("/outings", outingHandler.List)
		api.GET("/outings/:id", outingHandler.Get)
		api.PUT("/outings/:id/seats", outingHandler.AssignSeat)
		api.PUT("/outings/:id/seat-status", outingHandler.UpdateSeatStatus)
		api.PUT("/outings/:id/status", outingHandler.UpdateStatus)
		api.GET("/outings/:id/report", outingHandler.Report)
		api.PUT("/outings/:id/report", outingHandler.UpdateReport)
		api.GET("/outings/:id/assignments", assignmentHandler.Get)
		api.PUT("/outings/:id/assignments", assignmentHandler.Save)
		api.DELETE("/outings/:id/assignments", assignmentHandler.Clear)

		api.GET("/tests", testHandler.List)
		api.GET("/tests/:id", testHandler.Get)
		api.PUT("/tests/:id/slots", testHandler.AssignSlot)
		api.PUT("/tests/:id/outcome", testHandler.UpdateOutcome)

		api.GET("/coxing/availability", coxingHandler.Days)
		api.POST("/coxing/availability", coxingHandler.UpdateSlot)
		api.GET("/coxing/eligible", coxingHandler.Eligible)
		api.GET("/coxing/overview", coxingHandler.Overview)

		api.GET("/events", eventHandler.List)
		api.GET("/flag-status", flagHandler.Current)
		api.GET("/metrics/summary", metricsHandler.Summary)

		if cfg.Exports.Enabled {
			api.GET("/outings/:id/crew-sheet.pdf", exportHandler.CrewSheet)
			api.GET("/availability/export.csv", exportHandler.AvailabilityCSV)
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}

// buildAssignmentBackend selects the durable store and change broadcaster for
// draft seat assignments. Redis also fans changes out across instances; the
// default SQLite backend keeps everything local.
func buildAssignmentBackend(cfg *config.Config, logr *zap.Logger) (statecache.Store, statecache.Broadcaster, func(), error) {
	if cfg.Assignments.Backend == "redis" {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		store := statecache.NewRedisStore(client, cfg.Assignments.Expiry, nil)
		broadcaster := statecache.NewRedisBroadcaster(client, cfg.Assignments.Channel, logr)
		return store, broadcaster, func() { _ = client.Close() }, nil
	}

	db, err := statecache.OpenSQLite(cfg.Assignments.SQLitePath)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := statecache.NewSQLiteStore(db, cfg.Assignments.Expiry, nil)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	return store, statecache.NewNotifier(), func() { _ = db.Close() }, nil
}
