package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"wandshop-api/internal/cache"
	"wandshop-api/internal/config"
	"wandshop-api/internal/database"
	"wandshop-api/internal/handler"
	"wandshop-api/internal/logger"
	"wandshop-api/internal/middleware"
	"wandshop-api/internal/repository"
	"wandshop-api/internal/router"
	"wandshop-api/internal/service"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	if err := logger.Init(cfg.App.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.L().Info("starting wand shop API",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("db_driver", cfg.Database.Driver),
	)

	if err := run(cfg); err != nil {
		zap.L().Fatal("server exited with error", zap.Error(err))
	}
	zap.L().Info("server stopped")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Open(ctx, cfg.Database)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	migrator := database.NewMigrator(db, database.NewScripts(database.Dialect(cfg.Database.Driver), cfg.Scripts.Dir))
	if err := bootstrap(context.Background(), cfg, migrator); err != nil {
		return err
	}

	c := newCache(cfg.Cache)
	defer c.Close()

	// Repositories
	inventoryRepo := repository.NewSQLInventoryRepository(db)
	wandRepo := repository.NewSQLWandRepository(db)
	customerRepo := repository.NewSQLCustomerRepository(db)
	deliveryRepo := repository.NewSQLDeliveryRepository(db)
	salesRepo := repository.NewSQLSalesRepository(db)
	referenceRepo := repository.NewSQLReferenceRepository(db)
	statsRepo := repository.NewSQLStatsRepository(db, cfg.Database.Driver)

	// Services
	inventoryService := service.NewInventoryService(inventoryRepo, c, cfg.Cache.TTL)
	wandService := service.NewWandService(wandRepo, inventoryRepo, c)
	customerService := service.NewCustomerService(customerRepo)
	deliveryService := service.NewDeliveryService(deliveryRepo, c)
	salesService := service.NewSalesService(salesRepo)
	catalogService := service.NewCatalogService(referenceRepo)
	adminService := service.NewAdminService(migrator, statsRepo, c)

	keys := cfg.App.Keys()
	if len(keys) == 0 {
		zap.L().Warn("API_KEYS is empty; admin endpoints are unauthenticated")
	}

	r := router.New(router.Config{
		Handler:          handler.New(db, cfg.App.Name, cfg.App.Version),
		WandHandler:      handler.NewWandHandler(wandService),
		CustomerHandler:  handler.NewCustomerHandler(customerService),
		InventoryHandler: handler.NewInventoryHandler(inventoryService),
		DeliveryHandler:  handler.NewDeliveryHandler(deliveryService),
		SalesHandler:     handler.NewSalesHandler(salesService),
		ReferenceHandler: handler.NewReferenceHandler(catalogService),
		AdminHandler:     handler.NewAdminHandler(adminService, cfg.Cache.Type),
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthConfig{APIKeys: keys}),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		zap.L().Info("server listening", zap.String("addr", cfg.Server.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	zap.L().Info("shutting down server")

	ctx, cancel = context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// bootstrap creates the schema when enabled and loads the sample data into
// an empty store when asked to.
func bootstrap(ctx context.Context, cfg *config.Config, m *database.Migrator) error {
	if !cfg.App.AutoMigrate {
		return nil
	}
	if err := m.InitSchema(ctx); err != nil {
		return err
	}
	if !cfg.App.SeedSample {
		return nil
	}

	err := m.SeedSampleData(ctx)
	if errors.Is(err, database.ErrStoreNotEmpty) {
		zap.L().Info("store already populated, skipping sample data")
		return nil
	}
	return err
}

// newCache picks the configured cache. An unreachable Redis falls back to
// the in-memory cache.
func newCache(cfg config.CacheConfig) cache.Cache {
	switch cfg.Type {
	case "none":
		return cache.NopCache{}
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:      cfg.RedisAddress(),
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		})
		if err == nil {
			return rc
		}
		zap.L().Warn("redis unavailable, falling back to memory cache", zap.Error(err))
	}
	return cache.NewMemoryCache(time.Minute)
}
