package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketsquare/internal/config"
	"marketsquare/internal/database"
	"marketsquare/internal/handler"
	"marketsquare/internal/media"
	"marketsquare/internal/payment"
	"marketsquare/internal/repository"
	"marketsquare/internal/router"
	"marketsquare/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting marketsquare API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	shopRepo := repository.NewShopRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	addressRepo := repository.NewAddressRepository(pool, logger)
	favoriteRepo := repository.NewFavoriteRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)

	// Initialize media storage with S3 and local fallback
	var storage media.Storage
	if cfg.Media.S3Enabled {
		s3Storage, err := media.NewS3Storage(ctx, cfg.Media.Bucket, cfg.Media.Region, cfg.Media.Prefix, cfg.Media.BaseURL, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 media storage, falling back to local file system")
			storage = media.NewFileStorage(cfg.Media.LocalDir, cfg.Media.BaseURL, logger)
		} else {
			storage = s3Storage
		}
	} else {
		storage = media.NewFileStorage(cfg.Media.LocalDir, cfg.Media.BaseURL, logger)
		logger.Info().Msg("using local file system for image uploads (S3 disabled)")
	}

	// Initialize payment processor client
	paymentClient := payment.NewHTTPClient(cfg.Payment.BaseURL, cfg.Payment.SecretKey, logger)

	// Initialize services
	userService := service.NewUserService(userRepo, logger)
	shopService := service.NewShopService(shopRepo, userRepo, logger)
	productService := service.NewProductService(productRepo, shopRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, addressRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	addressService := service.NewAddressService(addressRepo, logger)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo, logger)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, paymentClient, logger)

	// Initialize HTTP handlers and router
	mux := router.New(router.Handlers{
		User:     handler.NewUserHandler(userService, logger),
		Shop:     handler.NewShopHandler(shopService, logger),
		Product:  handler.NewProductHandler(productService, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Address:  handler.NewAddressHandler(addressService, logger),
		Favorite: handler.NewFavoriteHandler(favoriteService, logger),
		Upload:   handler.NewUploadHandler(storage, logger),
		Payment:  handler.NewPaymentHandler(paymentService, logger),
	}, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
