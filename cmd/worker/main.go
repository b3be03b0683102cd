package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-storefront-api/internal/app/api"
	"github.com/Apurer/go-storefront-api/internal/notifications/email"
	platformobservability "github.com/Apurer/go-storefront-api/internal/platform/observability"
	orderactivities "github.com/Apurer/go-storefront-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-storefront-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	notifier := buildNotifier(cfg, logger)
	confirmationActivities := orderactivities.NewActivities(notifier)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderConfirmationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderConfirmationWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderConfirmationWorkflowName})
	w.RegisterActivityWithOptions(confirmationActivities.SendConfirmation, activity.RegisterOptions{Name: orderactivities.SendConfirmationActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderConfirmationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildNotifier(cfg api.Config, logger *slog.Logger) *email.Notifier {
	if !cfg.SMTPConfigured() {
		logger.Warn("SMTP_HOST not set, confirmation activities will fail until configured")
	}
	return email.NewNotifier(cfg.SMTP)
}
