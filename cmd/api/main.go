package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/placement-portal/api/internal/api/http"
	"github.com/placement-portal/api/internal/api/http/handlers"
	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/config"
	"github.com/placement-portal/api/internal/events"
	"github.com/placement-portal/api/internal/observability"
	"github.com/placement-portal/api/internal/persistence"
	"github.com/placement-portal/api/internal/repository"
	"github.com/placement-portal/api/internal/service"
	"github.com/placement-portal/api/internal/worker"
	"github.com/placement-portal/api/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics("portal")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), migrations.FS, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var (
		sessions    auth.SessionStore
		redisPinger handlers.Pinger
	)
	if cfg.Auth.TokenStrategy == config.TokenStrategySession {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		sessions = auth.NewRedisSessionStore(redis.Client)
		redisPinger = redis
	}
	logger.Info("token strategy", zap.String("strategy", cfg.Auth.TokenStrategy))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), sessions)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost, cfg.Auth.HashConcurrency)

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	appRepo := repository.NewApplicationRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo: userRepo,
		Tokens:   tokens,
		Hasher:   hasher,
		Events:   dispatcher,
		Logger:   logger,
	})
	applicationService := service.NewApplicationService(appRepo, dispatcher, logger)
	jobService := service.NewJobService(jobRepo, dispatcher)
	studentService := service.NewStudentService(studentRepo)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: !cfg.App.IsDevelopment(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.CORSAllowOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisPinger),
		Auth:           handlers.NewAuthHandler(authService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Students:       handlers.NewStudentsHandler(studentService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
		Metrics:        metrics,
	})

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
