package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/flowik/backend/internal/application/catalog"
	ledgerapp "github.com/flowik/backend/internal/application/ledger"
	notificationapp "github.com/flowik/backend/internal/application/notification"
	partnerapp "github.com/flowik/backend/internal/application/partner"
	"github.com/flowik/backend/internal/infrastructure/auth"
	"github.com/flowik/backend/internal/infrastructure/config"
	"github.com/flowik/backend/internal/infrastructure/logger"
	"github.com/flowik/backend/internal/infrastructure/persistence"
	"github.com/flowik/backend/internal/infrastructure/scheduler"
	"github.com/flowik/backend/internal/interfaces/http/handler"
	"github.com/flowik/backend/internal/interfaces/http/middleware"
	"github.com/flowik/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer logger.Sync(log)

	log.Info("Starting Flowik Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database, with gorm logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database connected")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	providerRepo := persistence.NewGormProviderRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	debtRepo := persistence.NewGormDebtRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	ledgerTxScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	notifierService := notificationapp.NewNotifierService(notificationRepo, log)
	clientService := partnerapp.NewClientService(clientRepo, log)
	providerService := partnerapp.NewProviderService(providerRepo, log)
	productService := catalogapp.NewProductService(productRepo, log)
	stockService := catalogapp.NewStockService(productRepo, notifierService, log)
	debtService := ledgerapp.NewDebtService(debtRepo, paymentRepo, clientRepo, log)
	allocationService := ledgerapp.NewPaymentAllocationService(clientRepo, ledgerTxScope, log)
	debtSweepService := ledgerapp.NewDebtSweepService(debtRepo, clientRepo, notifierService, log)
	retentionTask := notificationapp.NewRetentionTask(notifierService)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Background tasks: debt reclassification, stock level check,
	// notification retention
	sched := scheduler.NewIntervalScheduler(log)
	if cfg.Scheduler.Enabled {
		if err := sched.Add(debtSweepService, cfg.Scheduler.DebtSweepInterval); err != nil {
			log.Fatal("Failed to register debt sweep", zap.Error(err))
		}
		if err := sched.Add(stockService, cfg.Scheduler.StockCheckInterval); err != nil {
			log.Fatal("Failed to register stock check", zap.Error(err))
		}
	}
	if cfg.Retention.Enabled {
		if err := sched.Add(retentionTask, cfg.Retention.Interval); err != nil {
			log.Fatal("Failed to register notification retention", zap.Error(err))
		}
	}
	if err := sched.Start(context.Background()); err != nil {
		log.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/api/v1/health"},
		Logger:     log,
	}))

	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewProviderHandler(providerService)).
		Register(handler.NewProductHandler(productService, stockService)).
		Register(handler.NewDebtHandler(debtService)).
		Register(handler.NewPaymentHandler(allocationService)).
		Register(handler.NewNotificationHandler(notifierService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		log.Error("Scheduler shutdown failed", zap.Error(err))
	}
	log.Info("Shutdown complete")
}
