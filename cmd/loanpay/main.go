package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"github.com/fintara/loanpay/internal/pkg/config"
	"github.com/fintara/loanpay/internal/pkg/crypto"
	"github.com/fintara/loanpay/internal/pkg/database"
	"github.com/fintara/loanpay/internal/pkg/health"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/middleware"
	"github.com/fintara/loanpay/internal/pkg/nats"
	nrpkg "github.com/fintara/loanpay/internal/pkg/newrelic"
	"github.com/fintara/loanpay/internal/pkg/observability"
	"github.com/fintara/loanpay/internal/pkg/server"
	"github.com/fintara/loanpay/services/payments/gateway"
	"github.com/fintara/loanpay/services/payments/handler"
	"github.com/fintara/loanpay/services/payments/repository"
	"github.com/fintara/loanpay/services/payments/usecase"
)

func main() {
	appName := "loanpay"
	configPath := "config/loanpay.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	tracer := observability.NewTracerFactory().CreateTracer(nrApp)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client (per-schedule submission locks)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client (payment lifecycle events)
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Bank detail column encryption
	cipher, err := crypto.NewCipher(configs.Crypto.Passphrase, configs.Crypto.Salt)
	if err != nil {
		zapLogger.Fatal("Failed to initialize bank detail cipher", logger.Err(err))
	}

	// Initialize repository
	ledgerRepo := repository.NewLedgerRepo(configs, postgresClient.GetDB(), cipher)

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(configs, natsClient, zapLogger)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, ledgerRepo, paymentGW, redisClient, zapLogger)

	// Initialize handlers
	paymentHandler := handler.NewHandler(paymentUC, configs)

	// Scheduled jobs: reconciliation cadence + due-schedule submission sweep.
	// Per-item errors inside a run are data, not process failures; the run
	// logs its summary and the process keeps running.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(configs.Reconcile.CronSpec, func() {
		txn := tracer.StartTransaction("cron/reconcile-payments")
		defer txn.End()
		if _, err := paymentUC.ReconcilePayments(txn.GetContext()); err != nil {
			txn.NoticeError(err)
			zapLogger.Error("Scheduled reconciliation run failed", logger.Err(err))
		}
	}); err != nil {
		zapLogger.Fatal("Failed to schedule reconciliation job", logger.Err(err))
	}
	if _, err := scheduler.AddFunc(configs.Reconcile.SubmitCronSpec, func() {
		txn := tracer.StartTransaction("cron/submit-due-payments")
		defer txn.End()
		if _, err := paymentUC.SubmitDuePayments(txn.GetContext()); err != nil {
			txn.NoticeError(err)
			zapLogger.Error("Scheduled due-payment sweep failed", logger.Err(err))
		}
	}); err != nil {
		zapLogger.Fatal("Failed to schedule submission sweep job", logger.Err(err))
	}
	scheduler.Start()

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	paymentHandler.RegisterRoutes(e)

	// Cleanup order: stop scheduled jobs first so no run starts against
	// closing clients, then release connections.
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		<-scheduler.Stop().Done()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})

	// Blocks until an interrupt or termination signal, then drains the
	// HTTP listener.
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("HTTP server shutdown error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
