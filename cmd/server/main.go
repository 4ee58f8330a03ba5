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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Devraj326/Vedss/api/swagger"
	"github.com/Devraj326/Vedss/internal/handler"
	"github.com/Devraj326/Vedss/internal/middleware"
	"github.com/Devraj326/Vedss/internal/models"
	"github.com/Devraj326/Vedss/internal/notify"
	"github.com/Devraj326/Vedss/internal/repository"
	"github.com/Devraj326/Vedss/internal/service"
	"github.com/Devraj326/Vedss/pkg/cache"
	"github.com/Devraj326/Vedss/pkg/config"
	"github.com/Devraj326/Vedss/pkg/database"
	"github.com/Devraj326/Vedss/pkg/export"
	"github.com/Devraj326/Vedss/pkg/logger"
	corsmiddleware "github.com/Devraj326/Vedss/pkg/middleware/cors"
	reqidmiddleware "github.com/Devraj326/Vedss/pkg/middleware/requestid"
	"github.com/Devraj326/Vedss/pkg/storage"
)

// @title Vedss API
// @version 1.0.0
// @description Personal relationship organizer: photos, events, study tasks, notes and live reminders
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheSvc = service.NewCacheService(repository.NewCacheRepository(redisClient), metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	photoRepo := repository.NewPhotoRepository(db)
	eventRepo := repository.NewEventRepository(db)
	studyRepo := repository.NewStudyRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	photoSvc := service.NewPhotoService(photoRepo, store, cfg.Uploads.MaxFileSizeBytes, logr)
	eventSvc := service.NewEventService(eventRepo, cacheSvc, logr)
	studySvc := service.NewStudyService(studyRepo)
	noteSvc := service.NewNoteService(noteRepo)
	exportSvc := service.NewExportService(noteSvc, eventSvc, export.NewCSVExporter(), export.NewPDFExporter())

	hub := notify.NewHub(logr)

	var scheduler *notify.Scheduler
	if cfg.Reminders.Enabled {
		scheduler, err = notify.NewScheduler(eventRepo, meteredHub{hub: hub, metrics: metricsSvc}, notify.SchedulerConfig{
			SweetSpec:       cfg.Reminders.SweetSpec,
			LookaheadSpec:   cfg.Reminders.LookaheadSpec,
			LookaheadWindow: cfg.Reminders.LookaheadWindow,
			Pool:            notify.DefaultSweetMessages,
			Logger:          logr,
		})
		if err != nil {
			logr.Sugar().Fatalw("failed to init reminder scheduler", "error", err)
		}
		scheduler.Start()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	healthHandler := handler.NewHealthHandler(db, hub)
	photoHandler := handler.NewPhotoHandler(photoSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	studyHandler := handler.NewStudyHandler(studySvc)
	noteHandler := handler.NewNoteHandler(noteSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	notificationHandler := handler.NewNotificationHandler(hub)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/health", healthHandler.Check)

		api.GET("/photos", photoHandler.List)
		api.POST("/photos/upload", photoHandler.Upload)
		api.PUT("/photos/:id", photoHandler.Update)
		api.DELETE("/photos/:id", photoHandler.Delete)

		api.GET("/events", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.GET("/events/export", exportHandler.Events)
		api.PUT("/events/:id", eventHandler.Update)
		api.DELETE("/events/:id", eventHandler.Delete)

		api.GET("/study", studyHandler.List)
		api.POST("/study", studyHandler.Create)
		api.PUT("/study/:id", studyHandler.Update)
		api.DELETE("/study/:id", studyHandler.Delete)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes/export", exportHandler.Notes)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		api.GET("/notifications/stream", notificationHandler.Stream)
	}

	r.Static("/uploads", store.Dir())
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown failed", "error", err)
	}
}

// meteredHub counts broadcasts before delegating to the hub.
type meteredHub struct {
	hub     *notify.Hub
	metrics *service.MetricsService
}

func (m meteredHub) Publish(event string, payload models.ReminderMessage) {
	m.metrics.RecordReminder(event)
	m.hub.Publish(event, payload)
}
