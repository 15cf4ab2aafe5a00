package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "investor-portal-backend/internal/api/http"
	"investor-portal-backend/internal/config"
	"investor-portal-backend/internal/logger"
	"investor-portal-backend/internal/repository/postgres"
	"investor-portal-backend/internal/scheduler"
	"investor-portal-backend/internal/security"
	"investor-portal-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Investor Portal API...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "base_url", cfg.App.BaseURL)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.ApplyMigrations(db); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	var reminders *scheduler.ReminderScheduler
	if cfg.Scheduler.Enabled {
		reminders = scheduler.NewReminderScheduler(store.ReminderJobRepository)
	} else {
		logger.Warn("Reminder scheduling disabled; invite reminders will not be queued")
		reminders = scheduler.NewReminderScheduler(nil)
	}

	inviteSvc := service.NewInviteService(
		store.InviteRepository,
		store.UserRepository,
		store.FundRepository,
		store.InvestorProfileRepository,
		reminders,
		emailSvc,
		tokenManager,
		nil,
		cfg.App.BaseURL,
		cfg.App.InviteExpiryDays,
	)
	memberSvc := service.NewMemberService(store.UserRepository)

	inviteHandler := api.NewInviteHandler(inviteSvc)
	memberHandler := api.NewMemberHandler(memberSvc)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	router := api.NewRouter(inviteHandler, memberHandler, authMiddleware, db)

	logger.Info("Listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
