package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/arabshield/platform-api/internal/api"
	"github.com/arabshield/platform-api/internal/core/service"
	"github.com/arabshield/platform-api/internal/infrastructure/config"
	mongodb "github.com/arabshield/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/arabshield/platform-api/internal/infrastructure/db/redis"
	"github.com/arabshield/platform-api/internal/infrastructure/queue"
	"github.com/arabshield/platform-api/pkg/logger"
)

// @title        ArabShield Platform API
// @version      1.0
// @description  Bilingual marketing site and client dashboard backend.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	settingsRepo := mongodb.NewSettingsRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	roleCache := redisdb.NewRoleCache(rdb)

	// --- Settings watcher: subscribe on startup, release on shutdown ---
	watcher := service.NewSettingsWatcher(settingsRepo, log)
	watcher.Start(ctx)
	defer watcher.Stop()

	// --- Notification delivery pipeline ---
	notificationService := service.NewNotificationService(notificationRepo, log)
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, notificationService, log)
	dispatcher.Start(ctx)
	broadcaster := service.NewMaintenanceBroadcaster(profileRepo, dispatcher, log)

	// --- Services ---
	settingsService := service.NewSettingsService(settingsRepo, auditRepo, broadcaster, log)
	profileService := service.NewProfileService(profileRepo, auditRepo, roleCache, watcher, log)
	authService := service.NewAuthService(authRepo, profileService, watcher, cfg.JWTSecret, 24*time.Hour)
	faqService := service.NewFAQService(nil)

	e := api.NewRouter(api.Deps{
		DB:               db,
		Redis:            rdb,
		Watcher:          watcher,
		SettingsService:  settingsService,
		ProfileService:   profileService,
		AuthService:      authService,
		AuditRepo:        auditRepo,
		NotificationRepo: notificationRepo,
		FAQ:              faqService,
		JWTSecret:        cfg.JWTSecret,
		Log:              log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
