package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/config"
	"github.com/jfcamargo/cobros-engine/internal/handler"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	"github.com/jfcamargo/cobros-engine/internal/service"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

func main() {
	_ = godotenv.Load()

	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	configureLogger(log, cfg)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)
	susuRepo := repository.NewSusuRepository(db)
	closingRepo := repository.NewClosingRepository(db)

	// Services
	cache := service.NewReportCache(redisClient, cfg.Business.ReportCacheTTL)
	clientService := service.NewClientService(clientRepo, log)
	loanService := service.NewLoanService(clientRepo, loanRepo, paymentRepo, transferRepo, cache, log)
	reportService := service.NewReportService(clientRepo, loanRepo, paymentRepo, transferRepo, expenseRepo, closingRepo, cache, log, cfg.GetOpeningBalanceBase())
	salaryService := service.NewSalaryService(salaryRepo, paymentRepo, log)
	susuService := service.NewSusuService(susuRepo, log)

	// Handlers
	clientHandler := handler.NewClientHandler(clientService)
	loanHandler := handler.NewLoanHandler(loanService)
	reportHandler := handler.NewReportHandler(reportService)
	salaryHandler := handler.NewSalaryHandler(salaryService)
	susuHandler := handler.NewSusuHandler(susuService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	router := setupRoutes(clientHandler, loanHandler, reportHandler, salaryHandler, susuHandler, healthHandler)
	router.Use(response.LoggingMiddleware(log))
	router.Use(response.CORSMiddleware)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}

func configureLogger(log *logrus.Logger, cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logging.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{})
	}
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	clientHandler *handler.ClientHandler,
	loanHandler *handler.LoanHandler,
	reportHandler *handler.ReportHandler,
	salaryHandler *handler.SalaryHandler,
	susuHandler *handler.SusuHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	api.HandleFunc("/clients", clientHandler.List).Methods("GET")
	api.HandleFunc("/clients/{clientId}", clientHandler.Get).Methods("GET")
	api.HandleFunc("/clients/{clientId}", clientHandler.Update).Methods("PUT")

	api.HandleFunc("/loans", loanHandler.Create).Methods("POST")
	api.HandleFunc("/loans", loanHandler.List).Methods("GET")
	api.HandleFunc("/loans/{loanId}", loanHandler.Get).Methods("GET")
	api.HandleFunc("/loans/{loanId}/payments", loanHandler.RegisterPayment).Methods("POST")
	api.HandleFunc("/loans/{loanId}/transfers", loanHandler.RegisterTransfer).Methods("POST")
	api.HandleFunc("/loans/{loanId}/renewal", loanHandler.Renew).Methods("POST")

	api.HandleFunc("/reports/daily", reportHandler.Daily).Methods("GET")
	api.HandleFunc("/reports/period", reportHandler.Period).Methods("GET")
	api.HandleFunc("/expenses", reportHandler.CreateExpense).Methods("POST")
	api.HandleFunc("/expenses", reportHandler.ListExpenses).Methods("GET")

	api.HandleFunc("/collectors/{collectorId}/salary-config", salaryHandler.GetConfig).Methods("GET")
	api.HandleFunc("/collectors/{collectorId}/salary-config", salaryHandler.UpsertConfig).Methods("PUT")
	api.HandleFunc("/collectors/{collectorId}/commission", salaryHandler.Commission).Methods("GET")
	api.HandleFunc("/collectors/{collectorId}/salary-payments", salaryHandler.ListPayments).Methods("GET")
	api.HandleFunc("/salary-payments", salaryHandler.CreatePayment).Methods("POST")

	api.HandleFunc("/susus", susuHandler.Create).Methods("POST")
	api.HandleFunc("/susus/{susuId}/participants/{position}/payments", susuHandler.RegisterContribution).Methods("POST")
	api.HandleFunc("/susus/{susuId}/progress", susuHandler.Progress).Methods("GET")

	return router
}
