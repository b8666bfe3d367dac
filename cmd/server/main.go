package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sweethomebakery/backend/internal/config"
	"github.com/sweethomebakery/backend/internal/handlers"
	"github.com/sweethomebakery/backend/internal/middleware"
	"github.com/sweethomebakery/backend/internal/repository/mongodb"
	"github.com/sweethomebakery/backend/internal/seed"
	"github.com/sweethomebakery/backend/internal/service"
	"github.com/sweethomebakery/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting bakery api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the document store
	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	store := mongodb.NewStore(client.Database(cfg.Mongo.Database))

	// Seed initial data (skipped when products already exist)
	if err := seed.Run(ctx, store, log); err != nil {
		log.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	// Initialize services
	productService := service.NewProductService(store)
	reviewService := service.NewReviewService(store)
	orderService := service.NewOrderService(store)
	businessService := service.NewBusinessService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	businessHandler := handlers.NewBusinessHandler(businessService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/", healthHandler.Root)

		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)

		r.Get("/business-info", businessHandler.GetBusinessInfo)
		r.Get("/delivery-options", businessHandler.GetDeliveryOptions)
		r.Get("/business-hours", businessHandler.GetBusinessHours)

		r.Get("/reviews", reviewHandler.ListReviews)
		r.Post("/reviews", reviewHandler.CreateReview)

		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders/{orderId}", orderHandler.GetOrder)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
