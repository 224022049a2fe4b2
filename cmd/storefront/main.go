package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

// @title						Storefront API
// @version					1.0
// @description				Catalog, carts, orders and customers for an online store.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
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
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := productCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	publisher, err := events.NewSNSPublisher(ctx, cfg.AWS)
	if err != nil {
		slog.Error("❌ Error initializing order events", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var emailService sendgrid.EmailService
	if cfg.SendGrid.Enabled {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)

	collectionService := service.NewCollectionService(repos.Collection, productCache)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	promotionService := service.NewPromotionService(repos.Promotion)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	productService := service.NewProductService(repos.Product, productCache)
	productHandler := handlers.NewProductHandler(productService)
	reviewService := service.NewReviewService(repos.Review, repos.Product)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartService := service.NewCartService(repos.Cart)
	cartHandler := handlers.NewCartHandler(cartService)
	customerService := service.NewCustomerService(repos.Customer)
	customerHandler := handlers.NewCustomerHandler(customerService)
	notificationService := service.NewNotificationService(repos.User, emailService)
	orderService := service.NewOrderService(repos.Order, repos.Customer, publisher, notificationService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey, tokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	paymentService := service.NewPaymentService(repos.Order, stripeClient, cfg.Stripe.Currency)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error initializing health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	protect := authMiddleware.Protect

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /api/v1/collections", protect(access.ResourceCollection, access.OpList, collectionHandler.ListCollections()))
	routerMux.HandleFunc("POST /api/v1/collections", protect(access.ResourceCollection, access.OpCreate, collectionHandler.CreateCollection()))
	routerMux.HandleFunc("GET /api/v1/collections/{id}", protect(access.ResourceCollection, access.OpRead, collectionHandler.GetCollection()))
	routerMux.HandleFunc("PUT /api/v1/collections/{id}", protect(access.ResourceCollection, access.OpUpdate, collectionHandler.UpdateCollection()))
	routerMux.HandleFunc("DELETE /api/v1/collections/{id}", protect(access.ResourceCollection, access.OpDelete, collectionHandler.DeleteCollection()))

	routerMux.HandleFunc("GET /api/v1/promotions", protect(access.ResourcePromotion, access.OpList, promotionHandler.ListPromotions()))
	routerMux.HandleFunc("POST /api/v1/promotions", protect(access.ResourcePromotion, access.OpCreate, promotionHandler.CreatePromotion()))

	routerMux.HandleFunc("GET /api/v1/products", protect(access.ResourceProduct, access.OpList, productHandler.ListProducts()))
	routerMux.HandleFunc("POST /api/v1/products", protect(access.ResourceProduct, access.OpCreate, productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", protect(access.ResourceProduct, access.OpRead, productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", protect(access.ResourceProduct, access.OpUpdate, productHandler.ReplaceProduct()))
	routerMux.HandleFunc("PATCH /api/v1/products/{id}", protect(access.ResourceProduct, access.OpUpdate, productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", protect(access.ResourceProduct, access.OpDelete, productHandler.DeleteProduct()))

	routerMux.HandleFunc("GET /api/v1/products/{productId}/reviews", protect(access.ResourceReview, access.OpList, reviewHandler.ListReviews()))
	routerMux.HandleFunc("POST /api/v1/products/{productId}/reviews", protect(access.ResourceReview, access.OpCreate, reviewHandler.CreateReview()))
	routerMux.HandleFunc("GET /api/v1/products/{productId}/reviews/{id}", protect(access.ResourceReview, access.OpRead, reviewHandler.GetReview()))
	routerMux.HandleFunc("PUT /api/v1/products/{productId}/reviews/{id}", protect(access.ResourceReview, access.OpUpdate, reviewHandler.UpdateReview()))
	routerMux.HandleFunc("DELETE /api/v1/products/{productId}/reviews/{id}", protect(access.ResourceReview, access.OpDelete, reviewHandler.DeleteReview()))

	routerMux.HandleFunc("POST /api/v1/carts", protect(access.ResourceCart, access.OpCreate, cartHandler.CreateCart()))
	routerMux.HandleFunc("GET /api/v1/carts/{id}", protect(access.ResourceCart, access.OpRead, cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}", protect(access.ResourceCart, access.OpDelete, cartHandler.DeleteCart()))
	routerMux.HandleFunc("GET /api/v1/carts/{id}/items", protect(access.ResourceCart, access.OpList, cartHandler.ListItems()))
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items", protect(access.ResourceCart, access.OpCreate, cartHandler.AddItem()))
	routerMux.HandleFunc("GET /api/v1/carts/{id}/items/{itemId}", protect(access.ResourceCart, access.OpRead, cartHandler.GetItem()))
	routerMux.HandleFunc("PATCH /api/v1/carts/{id}/items/{itemId}", protect(access.ResourceCart, access.OpUpdate, cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/items/{itemId}", protect(access.ResourceCart, access.OpDelete, cartHandler.DeleteItem()))

	routerMux.HandleFunc("GET /api/v1/customers/me", protect(access.ResourceProfile, access.OpRead, customerHandler.GetProfile()))
	routerMux.HandleFunc("PUT /api/v1/customers/me", protect(access.ResourceProfile, access.OpUpdate, customerHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/customers/me/addresses", protect(access.ResourceProfile, access.OpList, customerHandler.ListAddresses()))
	routerMux.HandleFunc("POST /api/v1/customers/me/addresses", protect(access.ResourceProfile, access.OpUpdate, customerHandler.CreateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/customers/me/addresses/{id}", protect(access.ResourceProfile, access.OpUpdate, customerHandler.DeleteAddress()))
	routerMux.HandleFunc("GET /api/v1/customers", protect(access.ResourceCustomer, access.OpList, customerHandler.ListCustomers()))
	routerMux.HandleFunc("POST /api/v1/customers", protect(access.ResourceCustomer, access.OpCreate, customerHandler.CreateCustomer()))
	routerMux.HandleFunc("GET /api/v1/customers/{id}", protect(access.ResourceCustomer, access.OpRead, customerHandler.GetCustomer()))
	routerMux.HandleFunc("PUT /api/v1/customers/{id}", protect(access.ResourceCustomer, access.OpUpdate, customerHandler.UpdateCustomer()))
	routerMux.HandleFunc("DELETE /api/v1/customers/{id}", protect(access.ResourceCustomer, access.OpDelete, customerHandler.DeleteCustomer()))

	routerMux.HandleFunc("GET /api/v1/orders", protect(access.ResourceOrder, access.OpList, orderHandler.ListOrders()))
	routerMux.HandleFunc("POST /api/v1/orders", protect(access.ResourceOrder, access.OpCreate, orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", protect(access.ResourceOrder, access.OpRead, orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}", protect(access.ResourceOrder, access.OpUpdate, orderHandler.UpdateOrder()))
	routerMux.HandleFunc("DELETE /api/v1/orders/{id}", protect(access.ResourceOrder, access.OpDelete, orderHandler.DeleteOrder()))

	routerMux.HandleFunc("POST /api/v1/orders/{id}/payment", protect(access.ResourcePayment, access.OpCreate, paymentHandler.CreatePayment()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	// Ops endpoints
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Middleware chaining, outermost last
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = rateLimiter.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()

	go sweepRateLimiter(sweepCtx, rateLimiter)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}

func sweepRateLimiter(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Sweep(); n > 0 {
				slog.Debug("Rate limiter swept idle clients", slog.Int("count", n))
			}
		}
	}
}
