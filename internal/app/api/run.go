package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	auditmemory "github.com/Apurer/go-storefront-api/internal/domains/audit/adapters/memory"
	auditpostgres "github.com/Apurer/go-storefront-api/internal/domains/audit/adapters/persistence/postgres"
	auditapp "github.com/Apurer/go-storefront-api/internal/domains/audit/application"
	auditports "github.com/Apurer/go-storefront-api/internal/domains/audit/ports"
	cataloghttp "github.com/Apurer/go-storefront-api/internal/domains/catalog/adapters/http"
	catalogmemory "github.com/Apurer/go-storefront-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/go-storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-storefront-api/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordershttp "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/http"
	ordersmemory "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/workflows"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/usersbridge"
	ordersapp "github.com/Apurer/go-storefront-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
	usershttp "github.com/Apurer/go-storefront-api/internal/domains/users/adapters/http"
	usersmemory "github.com/Apurer/go-storefront-api/internal/domains/users/adapters/memory"
	userspostgres "github.com/Apurer/go-storefront-api/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/Apurer/go-storefront-api/internal/domains/users/application"
	usersports "github.com/Apurer/go-storefront-api/internal/domains/users/ports"
	"github.com/Apurer/go-storefront-api/internal/notifications/email"
	"github.com/Apurer/go-storefront-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-storefront-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-storefront-api/internal/platform/postgres"
	sharederrors "github.com/Apurer/go-storefront-api/internal/shared/errors"
)

// Run boots the storefront HTTP API with observability, repositories, and
// workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	productRepo := buildProductRepository(db, logger)
	userRepo := buildUserRepository(db, logger)
	orderRepo := buildOrderRepository(db, logger)
	auditStore := buildAuditStore(db, logger)

	catalogService := catalogapp.NewService(productRepo)
	userService := usersapp.NewService(userRepo)
	auditService := auditapp.NewService(auditStore)
	notifier := buildNotifier(cfg, logger)

	var confirmations ordersports.ConfirmationDispatcher = ordersworkflows.NewInlineConfirmations(notifier)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, dispatching confirmations inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		confirmations = ordersworkflows.NewTemporalConfirmations(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	coreOrderService := ordersapp.NewService(
		orderRepo,
		catalogbridge.New(productRepo),
		usersbridge.New(userRepo),
		ordersapp.WithAuditSink(auditService),
		ordersapp.WithNotifier(notifier),
		ordersapp.WithConfirmationDispatcher(confirmations),
		ordersapp.WithLogger(logger),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	responder := sharederrors.NewChainedResponder("",
		ordershttp.ProblemMapper,
		cataloghttp.ProblemMapper,
		usershttp.ProblemMapper,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	v1 := router.Group("/v1")
	ordershttp.NewOrderAPI(orderService, responder).Register(v1)
	cataloghttp.NewProductAPI(catalogService, responder).Register(v1)
	usershttp.NewUserAPI(userService, responder).Register(v1)

	addr := ":" + cfg.Port
	logger.Info("Storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildProductRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("product repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildUserRepository(db *gorm.DB, logger *slog.Logger) usersports.Repository {
	if db == nil {
		return usersmemory.NewRepository()
	}
	logger.Info("user repository configured with postgres")
	return userspostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func buildAuditStore(db *gorm.DB, logger *slog.Logger) auditports.Store {
	if db == nil {
		return auditmemory.NewStore()
	}
	logger.Info("audit store configured with postgres")
	return auditpostgres.NewStore(db)
}

func buildNotifier(cfg Config, logger *slog.Logger) ordersports.Notifier {
	if !cfg.SMTPConfigured() {
		logger.Warn("SMTP_HOST not set, notifications go to the log only")
		return email.NewLogNotifier(logger)
	}
	return email.NewNotifier(cfg.SMTP)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
