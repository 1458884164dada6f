package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/print_api/internal/cache"
	"github.com/GTDGit/print_api/internal/config"
	"github.com/GTDGit/print_api/internal/database"
	"github.com/GTDGit/print_api/internal/handler"
	"github.com/GTDGit/print_api/internal/middleware"
	"github.com/GTDGit/print_api/internal/pricing"
	"github.com/GTDGit/print_api/internal/repository"
	"github.com/GTDGit/print_api/internal/service"
	"github.com/GTDGit/print_api/internal/worker"
)

// main is the entrypoint for the print pricing API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting print api")

	policy, err := pricing.LoadPolicy(cfg.PricingPolicyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PricingPolicyPath).Msg("pricing policy load failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Connect database
	db, err := database.Connect(ctx, &cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := database.Migrate(db.DB, "migrations"); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	priceRepo := repository.NewPrecomputedPriceRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// 5. Initialize price cache and services
	prices := cache.NewPriceCache()
	priceCacheSvc := service.NewPriceCacheService(catalogRepo, priceRepo, cache.NewSignal(redisClient), prices, cfg.Cache)
	pricingSvc := service.NewPricingService(catalogRepo, productRepo, prices, policy)
	orderSvc := service.NewOrderService(pricingSvc, orderRepo, policy, cfg.Order.PersistAttempts)

	if err := priceCacheSvc.Warm(ctx); err != nil {
		// Pricing answers PRICE_CACHE_EMPTY until an admin rebuild succeeds.
		log.Error().Err(err).Msg("price cache warm-up failed")
	}

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:     handler.NewHealthHandler(db.PingContext, redisClient.Ping, priceCacheSvc),
		Price:      handler.NewPriceHandler(pricingSvc),
		Order:      handler.NewOrderHandler(orderSvc),
		PriceCache: handler.NewPriceCacheHandler(priceCacheSvc),
	}

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, middleware.NewJWTMiddleware(cfg.JWTSecret))

	// 8. Start workers
	go worker.NewCacheSyncWorker(priceCacheSvc, cfg.Cache.SyncInterval).Start(ctx)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Cancel context to stop workers
	cancel()

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health     *handler.HealthHandler
	Price      *handler.PriceHandler
	Order      *handler.OrderHandler
	PriceCache *handler.PriceCacheHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	router.POST("/price/calculate", handlers.Price.Calculate)
	router.POST("/order/create", handlers.Order.CreateOrder)

	// Catalog editors call these after writing catalog rows.
	admin := router.Group("/admin")
	admin.Use(jwtMiddleware.Handle())
	{
		admin.GET("/price-cache", handlers.PriceCache.GetStatus)
		admin.POST("/price-cache/rebuild", handlers.PriceCache.Rebuild)
		admin.POST("/price-cache/invalidate", handlers.PriceCache.Invalidate)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
