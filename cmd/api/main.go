package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/zerobudget/backend/internal/config"
	"github.com/zerobudget/backend/internal/handler"
	"github.com/zerobudget/backend/internal/logger"
	"github.com/zerobudget/backend/internal/repository"
	"github.com/zerobudget/backend/internal/scheduler"
	"github.com/zerobudget/backend/internal/service"
	"github.com/zerobudget/backend/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	fixedExpenseRepo := repository.NewFixedExpenseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo)
	fixedExpenseService := service.NewFixedExpenseService(fixedExpenseRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo)
	reportService := service.NewReportService(settingsRepo, fixedExpenseRepo, categoryRepo, expenseRepo)
	archiveService := service.NewArchiveService(archiveRepo, settingsRepo, fixedExpenseRepo, categoryRepo, expenseRepo)
	exportService := service.NewExportService(backupRepo, categoryRepo, expenseRepo, archiveRepo)

	// Initialize handlers
	settingsHandler := handler.NewSettingsHandler(settingsService)
	fixedExpenseHandler := handler.NewFixedExpenseHandler(fixedExpenseService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	expenseHandler := handler.NewExpenseHandler(expenseService, settingsService)
	reportHandler := handler.NewReportHandler(reportService, settingsService)
	archiveHandler := handler.NewArchiveHandler(archiveService)
	exportHandler := handler.NewExportHandler(exportService, settingsService)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	// Propagate chi's request id into the logging context
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := logger.WithRequestID(req.Context(), middleware.GetReqID(req.Context()))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	// CORS - allow frontend origin from env or default
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Settings
	r.Get("/api/settings", settingsHandler.Get)
	r.Put("/api/settings", settingsHandler.Update)

	// Fixed expenses
	r.Get("/api/fixed-expenses", fixedExpenseHandler.List)
	r.Post("/api/fixed-expenses", fixedExpenseHandler.Create)
	r.Get("/api/fixed-expenses/{id}", fixedExpenseHandler.Get)
	r.Put("/api/fixed-expenses/{id}", fixedExpenseHandler.Update)
	r.Delete("/api/fixed-expenses/{id}", fixedExpenseHandler.Delete)

	// Categories
	r.Get("/api/categories", categoryHandler.List)
	r.Post("/api/categories", categoryHandler.Create)
	r.Get("/api/categories/{id}", categoryHandler.Get)
	r.Put("/api/categories/{id}", categoryHandler.Update)
	r.Delete("/api/categories/{id}", categoryHandler.Delete)

	// Expenses
	r.Get("/api/expenses", expenseHandler.List)
	r.Post("/api/expenses", expenseHandler.Create)
	r.Get("/api/expenses/export/csv", exportHandler.ExportExpensesCSV)
	r.Get("/api/expenses/{id}", expenseHandler.Get)
	r.Put("/api/expenses/{id}", expenseHandler.Update)
	r.Delete("/api/expenses/{id}", expenseHandler.Delete)

	// Reports
	r.Get("/api/reports/overview", reportHandler.Overview)
	r.Get("/api/reports/categories", reportHandler.Categories)
	r.Get("/api/reports/categories/{id}", reportHandler.Category)
	r.Get("/api/reports/distribution", reportHandler.Distribution)
	r.Get("/api/reports/budget-vs-actual", reportHandler.BudgetVsActual)

	// Archives
	r.Get("/api/archives", archiveHandler.List)
	r.Post("/api/archives/close", archiveHandler.CloseMonth)
	r.Get("/api/archives/{month}", archiveHandler.Get)
	r.Delete("/api/archives/{month}", archiveHandler.Delete)
	r.Get("/api/archives/{month}/export/pdf", exportHandler.ExportArchivePDF)

	// Backup
	r.Get("/api/export", exportHandler.ExportBackup)
	r.Post("/api/import", exportHandler.ImportBackup)

	// Month auto-close scheduler
	var closeScheduler *scheduler.Scheduler
	if cfg.AutoCloseEnabled {
		schedCfg := scheduler.Config{
			Schedule: cfg.AutoCloseSchedule,
			Timeout:  cfg.AutoCloseTimeout,
			Enabled:  cfg.AutoCloseEnabled,
		}
		closeScheduler = scheduler.New(schedCfg, archiveService, logger.Logger())
		if err := closeScheduler.Start(); err != nil {
			logger.Error("Failed to start auto-close scheduler", slog.String("error", err.Error()))
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Create server
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		// Stop scheduler first
		if closeScheduler != nil {
			ctx := closeScheduler.Stop()
			<-ctx.Done()
			logger.Info("Scheduler stopped")
		}

		// Shutdown HTTP server
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Server starting", slog.String("port", port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", slog.String("error", err.Error()))
	}
}
