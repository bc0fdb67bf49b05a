package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"billingapi/docs"
	"billingapi/internal/auth"
	"billingapi/internal/config"
	"billingapi/internal/database"
	"billingapi/internal/database/migration"
	handlers "billingapi/internal/http/handler"
	"billingapi/internal/http/middleware"
	"billingapi/internal/logger"
	"billingapi/internal/otel"
	"billingapi/internal/repository/postgres"
	"billingapi/internal/service"
)

// @title Billing API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE %q: %v", cfg.Timezone, err)
	}

	zl := logger.New(cfg.Log, loc)
	defer zl.Sync()

	shutdownTracing, err := otel.Init(context.Background(), zl)
	if err != nil {
		zl.Fatal("tracing_init_failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(context.Background(), cfg.Database, zl)
	if err != nil {
		zl.Fatal("db_connect_failed", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := migration.EnsureMigrated(ctx, db, zl)
		cancel()
		if err != nil {
			zl.Fatal("db_migration_aborted", zap.Error(err))
		}
	}

	// Initialize repositories and services
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)
	userRepo := postgres.NewUserPostgres(db)

	svc := handlers.Services{
		Company:  service.NewCompanyService(postgres.NewCompanyPostgres(db), hasher),
		User:     service.NewUserService(userRepo, hasher),
		Customer: service.NewCustomerService(postgres.NewCustomerPostgres(db)),
		Item:     service.NewItemService(postgres.NewItemPostgres(db)),
		Quote:    service.NewQuoteService(postgres.NewQuotePostgres(db)),
		Invoice:  service.NewInvoiceService(postgres.NewInvoicePostgres(db)),
		Payment:  service.NewPaymentService(postgres.NewPaymentPostgres(db)),
		WriteOff: service.NewWriteOffService(postgres.NewWriteOffPostgres(db)),
		Expense:  service.NewExpenseService(postgres.NewExpensePostgres(db)),
		Settings: service.NewSettingsService(postgres.NewSettingsPostgres(db)),
		Auth:     service.NewAuthService(userRepo, hasher, tokens),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	metrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		zl.Fatal("metrics_init_failed", zap.Error(err))
	}

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(metrics.Handler())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(zl))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svc, zl)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	zl.Info("server_starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("server_failed", zap.Error(err))
	}
}
