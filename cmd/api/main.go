package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/storefront-labs/storefront-service/internal/api/http"
	"github.com/storefront-labs/storefront-service/internal/api/http/handlers"
	"github.com/storefront-labs/storefront-service/internal/auth"
	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/config"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/observability"
	"github.com/storefront-labs/storefront-service/internal/persistence"
	"github.com/storefront-labs/storefront-service/internal/repository"
	"github.com/storefront-labs/storefront-service/internal/service"
	"github.com/storefront-labs/storefront-service/internal/worker"
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

	if err := cfg.Auth.Validate(); err != nil {
		logger.Error("token settings incomplete; token endpoints will fail", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("failed to configure redis", zap.Error(err))
	}
	defer redis.Close()

	readiness := []handlers.Pinger{pg, redis}

	var userRepo repository.UserRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			logger.Fatal("failed to connect mongodb", zap.Error(err))
		}
		defer func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			_ = mongo.Close(closeCtx)
		}()
		if err := repository.EnsureUserIndexes(ctx, mongo.DB); err != nil {
			logger.Fatal("failed to create user indexes", zap.Error(err))
		}
		userRepo = repository.NewMongoUserRepository(mongo.DB)
		readiness = append(readiness, mongo)
	default:
		userRepo = repository.NewUserRepository(pg.Pool)
	}
	storeRepo := repository.NewStoreRepository(pg.Pool)
	productRepo := repository.NewProductRepository(pg.Pool)
	orderRepo := repository.NewOrderRepository(pg.Pool)
	reviewRepo := repository.NewReviewRepository(pg.Pool)

	clk := clock.Real()
	codec := auth.NewTokenCodec(cfg.Auth, clk)
	issuer := auth.NewIssuer(cfg.Auth, codec, logger, metrics)
	authenticator := auth.NewAuthenticator(codec, userRepo, logger, metrics)

	dispatcher := events.NewInMemoryDispatcher()
	notifier := worker.NewNotificationWorker(service.NewNotificationService(logger, cfg.Notification), logger, 256)
	notifier.Subscribe(dispatcher)
	notifier.Start(ctx)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:   userRepo,
		Codec:      codec,
		Issuer:     issuer,
		Clock:      clk,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	userService := service.NewUserService(userRepo)
	catalogDeps := service.CatalogDependencies{
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		ReviewRepo:  reviewRepo,
		Cache:       redis.Client,
		CacheTTL:    cfg.Redis.CacheTTL(),
		Dispatcher:  dispatcher,
		Clock:       clk,
		Logger:      logger,
	}
	storeService := service.NewStoreService(catalogDeps)
	productService := service.NewProductService(storeService, catalogDeps)
	orderService := service.NewOrderService(catalogDeps)
	reviewService := service.NewReviewService(catalogDeps)

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness...),
		Auth:          handlers.NewAuthHandler(authService),
		Users:         handlers.NewUsersHandler(authService, userService),
		Stores:        handlers.NewStoresHandler(storeService),
		Products:      handlers.NewProductsHandler(productService),
		Orders:        handlers.NewOrdersHandler(orderService),
		Reviews:       handlers.NewReviewsHandler(reviewService),
		Authenticator: authenticator,
		Metrics:       metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	cancel()
	notifier.Wait()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
