package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ride-sharing-service/internal/api/http"
	"github.com/spec-kit/ride-sharing-service/internal/api/http/handlers"
	"github.com/spec-kit/ride-sharing-service/internal/auth"
	"github.com/spec-kit/ride-sharing-service/internal/config"
	"github.com/spec-kit/ride-sharing-service/internal/events"
	"github.com/spec-kit/ride-sharing-service/internal/observability"
	"github.com/spec-kit/ride-sharing-service/internal/persistence"
	"github.com/spec-kit/ride-sharing-service/internal/repository"
	"github.com/spec-kit/ride-sharing-service/internal/service"
	"github.com/spec-kit/ride-sharing-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The server must not accept traffic before storage is reachable.
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	driverRepo := repository.NewDriverRepository(pool)
	rideRepo := repository.NewRideRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)
	analyticsRepo := repository.NewAnalyticsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo, driverRepo)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	driverService := service.NewDriverService(driverRepo)
	rideService := service.NewRideService(rideRepo, driverRepo, vehicleRepo, transactionRepo, dispatcher, logger)
	vehicleService := service.NewVehicleService(vehicleRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, redis.Client, config.AnalyticsCacheTTL, logger)
	notificationService := service.NewNotificationService(dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), logger)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Drivers:        handlers.NewDriversHandler(driverService),
		Rides:          handlers.NewRidesHandler(rideService),
		Vehicles:       handlers.NewVehiclesHandler(vehicleService),
		Transactions:   handlers.NewTransactionsHandler(transactionService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
		VehicleOwner:   vehicleService.OwnerID,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
