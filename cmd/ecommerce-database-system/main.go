package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Joshmi-K-Joy/ecommerce-database-system/docs"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/handlers"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/api/middleware"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/cache"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/config"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/health"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/metrics"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	service "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/services"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/telemetry"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/pkg/sendGrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title			Ecommerce Database System API
//	@version		1.0
//	@description	Storefront backend covering catalog, carts, checkout, orders, inventory and analytics reports.
//	@host			localhost:8080
//	@BasePath		/api/v1

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.SetupTracing(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg, logger)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	cacheStore := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	cartLocks := repository.NewCartLockRepo(redisClient, cfg)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// The activity pipeline is shared by the product service and handlers,
	// and must outlive the HTTP server so in-flight batches can drain.
	activityService := service.NewActivityService(repos.Activity, logger)

	userService := service.NewUserService(repos.User)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product, cacheStore, activityService)
	productHandler := handlers.NewProductHandler(productService, activityService)
	inventoryService := service.NewInventoryService(repos.Inventory)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	notificationService := service.NewNotificationService(repos.Notification, sendGridClient)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	checkoutService := service.NewCheckoutService(repos.Checkout, repos.User, cartLocks, rateLimiter, notificationService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(repos.Payment, repos.Order)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	shipmentService := service.NewShipmentService(repos.Shipment, repos.Order)
	shipmentHandler := handlers.NewShipmentHandler(shipmentService)
	reviewService := service.NewReviewService(repos.Review, repos.Product)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	reportService := service.NewReportService(repos.Report, cacheStore, &cfg.Cache)
	reportHandler := handlers.NewReportHandler(reportService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users", userHandler.Register())
	routerMux.HandleFunc("GET /api/v1/users/{id}", userHandler.GetUser())
	routerMux.HandleFunc("PATCH /api/v1/users/{id}", userHandler.UpdateUser())
	routerMux.HandleFunc("POST /api/v1/users/{id}/addresses", userHandler.CreateAddress())
	routerMux.HandleFunc("GET /api/v1/users/{id}/addresses", userHandler.ListAddresses())
	routerMux.HandleFunc("PATCH /api/v1/users/{id}/addresses/{addressID}", userHandler.UpdateAddress())
	routerMux.HandleFunc("DELETE /api/v1/users/{id}/addresses/{addressID}", userHandler.DeleteAddress())
	routerMux.HandleFunc("GET /api/v1/users/{id}/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("POST /api/v1/categories", productHandler.CreateCategory())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.ListCategories())
	routerMux.HandleFunc("POST /api/v1/products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/search", productHandler.SearchProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PATCH /api/v1/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/inventory", inventoryHandler.GetInventory())
	routerMux.HandleFunc("POST /api/v1/products/{id}/inventory/restock", inventoryHandler.Restock())
	routerMux.HandleFunc("POST /api/v1/products/{id}/inventory/reserve", inventoryHandler.Reserve())
	routerMux.HandleFunc("POST /api/v1/products/{id}/inventory/release", inventoryHandler.Release())
	routerMux.HandleFunc("POST /api/v1/products/{id}/reviews", reviewHandler.SubmitReview())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", reviewHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/carts", cartHandler.CreateCart())
	routerMux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem())
	routerMux.HandleFunc("PATCH /api/v1/carts/{id}/items/{productID}", cartHandler.UpdateItemQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/items/{productID}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", orderHandler.UpdateOrderStatus())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/inventory-adjustments", inventoryHandler.ReapplyAdjustments())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/payments", paymentHandler.CreatePayment())
	routerMux.HandleFunc("GET /api/v1/orders/{id}/payments", paymentHandler.ListPayments())
	routerMux.HandleFunc("POST /api/v1/orders/{id}/shipments", shipmentHandler.CreateShipment())
	routerMux.HandleFunc("GET /api/v1/orders/{id}/shipments", shipmentHandler.ListShipments())
	routerMux.HandleFunc("PATCH /api/v1/shipments/{id}/status", shipmentHandler.UpdateShipmentStatus())
	routerMux.HandleFunc("GET /api/v1/reports/best-sellers", reportHandler.BestSellers())
	routerMux.HandleFunc("GET /api/v1/reports/revenue-by-category", reportHandler.RevenueByCategory())
	routerMux.HandleFunc("GET /api/v1/reports/monthly-revenue", reportHandler.MonthlyRevenue())
	routerMux.HandleFunc("GET /api/v1/reports/average-ratings", reportHandler.AverageRatings())
	routerMux.HandleFunc("GET /api/v1/reports/most-viewed", reportHandler.MostViewed())
	routerMux.HandleFunc("GET /api/v1/reports/top-searches", reportHandler.TopSearches())
	routerMux.HandleFunc("GET /api/v1/notifications", notificationHandler.ListNotifications())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "ecommerce-database-system")

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() { // Starts the HTTP server in a new goroutine so it doesn't block the main thread.

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done // blocking, until no signal is added to "done" channel, after the some signal is received the code after this point would be executed

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	// Drain buffered behavioral events before the database goes away.
	if err := activityService.Close(shutdownCtx); err != nil {
		slog.Error("⚠️ Activity pipeline did not drain in time", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
