package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"status_monitor/internal/classifier"
	"status_monitor/internal/config"
	"status_monitor/internal/handlers"
	"status_monitor/internal/logger"
	"status_monitor/internal/metrics"
	"status_monitor/internal/repository"
	"status_monitor/internal/server"
	"status_monitor/internal/service"
	"status_monitor/internal/stream"

	"github.com/coreos/go-systemd/v22/daemon"
)

const shutdownTimeout = 10 * time.Second

// @title        OpenAI Status Monitor API
// @version      1.0
// @description  Statuspage webhook receiver, incident history and live stream.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level)

	table, err := classifier.Resolve(cfg.Classifier.Preset, cfg.Classifier.KeywordsFile, classifier.PresetWebhook)
	if err != nil {
		log.Fatalw("failed to load keyword table", "err", err)
	}

	repos, err := repository.NewRepository(cfg.Store)
	if err != nil {
		log.Fatalw("failed to open log store", "driver", cfg.Store.Driver, "err", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Errorw("failed to close log store", "err", cerr)
		}
	}()

	// wire dependencies
	metrics.Register()
	hub := stream.NewHub()
	services := &service.Service{
		Webhook:     service.NewWebhookService(classifier.New(table)),
		IncidentLog: service.NewIncidentLogService(repos.LogStore),
		Authorization: service.NewAuthService(
			service.Operator{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash},
			cfg.Auth.SigningKey,
			cfg.Auth.TokenTTL,
		),
	}
	apiHandler := handlers.NewHandler(services, hub, log, cfg.Server.WebhookPath)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Server.Port, apiHandler, log)
	log.Infow("webhook_server_started", "port", cfg.Server.Port, "path", cfg.Server.WebhookPath)

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warnw("sd_notify_failed", "err", err)
	}

	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
