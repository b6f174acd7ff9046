package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-event-portal/config"
	"go-gin-event-portal/internal/cache"
	"go-gin-event-portal/internal/database"
	"go-gin-event-portal/internal/handler"
	"go-gin-event-portal/internal/identity"
	"go-gin-event-portal/internal/listing"
	"go-gin-event-portal/internal/remote"
	"go-gin-event-portal/internal/repository"
	"go-gin-event-portal/internal/service"
	"go-gin-event-portal/internal/worker"
	"go-gin-event-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const redisNamespace = "portal"

func main() {
	cfg := config.LoadConfig()

	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Server.LogLevel, err)
	}
	defer logger.L.Sync()
	appLog := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := identity.NewStore()
	events := remote.NewEventRepository(cfg.Remote.BaseURL, cfg.Remote.Timeout,
		remote.WithCredentials(sessions),
	)

	var (
		states listing.StateStore      = listing.NewMemoryStateStore()
		guard  service.SubmissionGuard = service.NewMemorySubmissionGuard()
	)
	if cfg.Listing.StateBackend == "redis" {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			appLog.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
		states = cache.NewRedisScreenStateStore(rdb, redisNamespace, cfg.Listing.StateTTL)
		guard = cache.NewRedisSubmissionGuard(rdb, redisNamespace, cfg.Remote.Timeout*2)
	}

	var journal repository.SubmissionRepository = repository.NoopSubmissionRepository{}
	if cfg.Database.Enabled {
		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			appLog.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.EnsureSchema(ctx, pool); err != nil {
			appLog.Fatal("Failed to prepare submission journal", zap.Error(err))
		}
		journal = repository.NewSubmissionRepository(pool)
	}

	engine := listing.NewEngine(events, states, cfg.Listing.PageSize)
	eventService := service.NewEventService(events)
	submissionService := service.NewSubmissionService(events, journal, guard)

	sessionWorker := worker.NewSessionWorker(sessions, states)
	if err := sessionWorker.Start(ctx); err != nil {
		appLog.Fatal("Failed to start session worker", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog(), handler.Identity(sessions))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	handler.NewSessionHandler(sessions).RegisterRoutes(router)
	handler.NewListingHandler(engine).RegisterRoutes(router)
	handler.NewEventHandler(eventService, submissionService).RegisterRoutes(router)
	handler.NewRegistrationHandler(eventService).RegisterRoutes(router)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		appLog.Info("Portal listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("event_api", cfg.Remote.BaseURL),
			zap.String("state_backend", cfg.Listing.StateBackend),
			zap.Bool("journal", cfg.Database.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Graceful shutdown failed", zap.Error(err))
	}
	<-sessionWorker.Done()
}
