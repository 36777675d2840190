package main

import (
	"os"
	"os/signal"
	"syscall"

	"medicine_expiry_notifier/internal/app"
	"medicine_expiry_notifier/internal/infra/config"
	idb "medicine_expiry_notifier/internal/infra/database"
	"medicine_expiry_notifier/internal/infra/email"
	"medicine_expiry_notifier/internal/infra/logger"
	"medicine_expiry_notifier/internal/infra/push"
	"medicine_expiry_notifier/internal/infra/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get().WithField("component", "main")
	log.WithField("environment", cfg.Environment).Info("Medicine expiry notifier starting")

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	log.Info("Database connection established")

	// Initialize Repositories
	medicineRepo := idb.NewPostgresMedicineRepository(db)
	settingsRepo := idb.NewPostgresSettingsRepository(db)
	logRepo := idb.NewPostgresLogRepository(db)

	// Initialize Channel Senders
	emailSender := email.NewClient(cfg, logger.Get().WithField("component", "email"))
	pushSender := push.NewClient(cfg)

	// Initialize NotificationService
	notifService := app.NewExpiryNotificationService(
		medicineRepo,
		settingsRepo,
		logRepo,
		emailSender,
		pushSender,
		logger.Get().WithField("component", "notification_service"),
	)
	log.Info("Notification service initialized")

	// Initialize CheckScheduler
	checkScheduler := scheduler.NewCheckScheduler(
		notifService,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecCheck,
	)
	if err := checkScheduler.Start(); err != nil {
		log.WithError(err).Fatal("Could not start expiry check scheduler")
	}

	log.Info("Application setup complete")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	checkScheduler.Stop()
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully")
}
