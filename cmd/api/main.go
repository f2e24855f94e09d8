package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/advisor"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/config"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/database"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/logger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/router"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/validator"
)

// @title           Expense Tracker API
// @version         1.0
// @description     Track expenses and income, filter history, chart totals, export CSV and PDF, and ask a finance advisor.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := validator.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	ledgerService := services.NewLedgerService(db)
	reportService := services.NewReportService(ledgerService, userService)

	var generator advisor.Generator
	if appConfig.AdvisorMode == config.AdvisorModeLLM {
		generator = advisor.NewLLMClient(appConfig.LLMURL, appConfig.LLMModel, &http.Client{Timeout: appConfig.LLMTimeout})
		log.Infof("Advisor using model %s at %s", appConfig.LLMModel, appConfig.LLMURL)
	}
	advisorService := services.NewAdvisorService(ledgerService, generator)

	srv := &http.Server{
		Addr: ":" + appConfig.Port,
		Handler: router.New(router.Services{
			Users:   userService,
			Ledger:  ledgerService,
			Reports: reportService,
			Advisor: advisorService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Expense Tracker server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
