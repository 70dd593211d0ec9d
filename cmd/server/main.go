package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/config"
	"github.com/marianadoces/console/internal/repository/mongodb"
	"github.com/marianadoces/console/internal/repository/sheets"
	"github.com/marianadoces/console/internal/scheduler"
	"github.com/marianadoces/console/internal/server/handlers"
	"github.com/marianadoces/console/internal/server/router"
	catalogsvc "github.com/marianadoces/console/internal/service/catalog"
	reportingsvc "github.com/marianadoces/console/internal/service/reporting"
	salessvc "github.com/marianadoces/console/internal/service/sales"
	"github.com/marianadoces/console/pkg/clients/backend"
	"github.com/marianadoces/console/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	backendClient := backend.NewClient(cfg.Backend, baseLogger.Named("client.backend"))

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := backendClient.Login(startupCtx, cfg.Backend.Email, cfg.Backend.Password); err != nil {
		baseLogger.Warn("initial backend login failed, will retry per request", zap.Error(err))
	}
	cancelStartup()

	var archive mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive = mongoRepo
	} else {
		baseLogger.Info("summary archive disabled, MONGODB_URI not set")
	}

	var sheet sheets.Repository
	if cfg.Sheets.SpreadsheetID != "" {
		sheetRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sheet = sheetRepo
	} else {
		baseLogger.Info("sheet export disabled, GOOGLE_SHEET_SUMMARY_ID not set")
	}

	catalogService := catalogsvc.NewService(backendClient, baseLogger.Named("svc.catalog"))
	salesService := salessvc.NewService(backendClient, baseLogger.Named("svc.sales"))
	reportingService := reportingsvc.NewService(backendClient, baseLogger.Named("svc.reporting"))

	handler := handlers.NewHandler(backendClient, catalogService, salesService, reportingService, baseLogger.Named("handlers.console"))
	engine := router.New(handler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingService, archive, sheet, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
