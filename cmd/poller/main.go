package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"status_monitor/internal/classifier"
	"status_monitor/internal/config"
	"status_monitor/internal/feed"
	"status_monitor/internal/logger"
	"status_monitor/internal/metrics"
	"status_monitor/internal/repository"
	"status_monitor/internal/server"
	"status_monitor/internal/service"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level)

	table, err := classifier.Resolve(cfg.Classifier.Preset, cfg.Classifier.KeywordsFile, classifier.PresetFeed)
	if err != nil {
		log.Fatalw("failed to load keyword table", "err", err)
	}

	repos, err := repository.NewRepository(cfg.Store)
	if err != nil {
		log.Fatalw("failed to open log store", "driver", cfg.Store.Driver, "err", err)
	}

	metrics.Register()
	if cfg.Metrics.Addr != "" {
		runMetricsServer(cfg.Metrics.Addr, log)
	}

	fetcher := feed.NewHTTPFetcher(cfg.Feed.URL, cfg.Feed.UserAgent, cfg.Feed.Timeout)
	poller := service.NewPollerService(fetcher, repos.LogStore, classifier.New(table), os.Stdout, log)

	log.Infow("poller_started", "feed", cfg.Feed.URL, "interval", cfg.Feed.Interval, "store", cfg.Store.Driver)
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warnw("sd_notify_failed", "err", err)
	}

	if err := runPoller(context.Background(), poller, cfg.Feed.Interval, repos); err != nil {
		log.Fatalw("poller stopped", "err", err)
	}
}

// runPoller blocks in p.Run and closes store once it returns, before the
// caller exits the process.
func runPoller(ctx context.Context, p service.Poller, interval time.Duration, store io.Closer) error {
	err := p.Run(ctx, interval)
	if cerr := store.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close log store: %w", cerr))
	}
	return err
}

func runMetricsServer(addr string, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &server.Server{}
	go func() {
		if err := srv.Run(addr, mux); err != nil {
			log.Errorw("metrics_server_failed", "addr", addr, "err", err)
		}
	}()
}
