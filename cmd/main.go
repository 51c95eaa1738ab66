package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/client"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/config"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/repository"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/scheduler"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/server"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/service"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/storage/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.InitDB(cfg.Mongo)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(database)
	services := service.InitServices(repos, logger)
	clients := client.InitClients(cfg)

	handler := server.New(services.WordS, services.UserS, services.AdminS,
		clients.Mailer, cfg.App.BaseURL, logger)

	reminders := scheduler.New(services.UserS, services.WordS, clients.PushoverAPI, logger)
	if err := reminders.Start(cfg.App.ReminderHour); err != nil {
		logger.Fatal("failed to start reminder scheduler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.App.Timeout,
		WriteTimeout: cfg.App.Timeout,
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	reminders.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
