package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jfcamargo/cobros-engine/internal/config"
	"github.com/jfcamargo/cobros-engine/internal/repository"
	"github.com/jfcamargo/cobros-engine/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	clientRepo := repository.NewClientRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	closingRepo := repository.NewClosingRepository(db)

	cache := service.NewReportCache(redisClient, cfg.Business.ReportCacheTTL)
	loanService := service.NewLoanService(clientRepo, loanRepo, paymentRepo, transferRepo, cache, log)
	reportService := service.NewReportService(clientRepo, loanRepo, paymentRepo, transferRepo, expenseRepo, closingRepo, cache, log, cfg.GetOpeningBalanceBase())

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone: %v", err)
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Nightly sweep: mark active loans past their end date as expired.
	_, err = c.AddFunc(cfg.Scheduler.ExpirySweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		swept, err := loanService.SweepExpired(ctx, time.Now().In(location))
		if err != nil {
			log.WithError(err).Error("expiry sweep failed")
			return
		}
		log.WithField("swept", swept).Info("expiry sweep finished")
	})
	if err != nil {
		log.Fatalf("Error scheduling expiry sweep: %v", err)
	}

	// Nightly closing: persist yesterday's report for audit.
	_, err = c.AddFunc(cfg.Scheduler.ClosingSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		yesterday := time.Now().In(location).AddDate(0, 0, -1)
		if err := reportService.SnapshotDay(ctx, yesterday); err != nil {
			log.WithError(err).Error("daily closing snapshot failed")
		}
	})
	if err != nil {
		log.Fatalf("Error scheduling daily closing: %v", err)
	}

	c.Start()
	log.Info("Scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	c.Stop()
	log.Info("Scheduler stopped")
}
