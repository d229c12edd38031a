package service

import (
	"context"
	"time"

	"status_monitor/internal/models"
)

type Authorization interface {
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Webhook validates and classifies one Statuspage delivery.
type Webhook interface {
	Process(ctx context.Context, body []byte) (models.IncidentNotice, error)
}

// IncidentLog exposes the persisted incident history.
type IncidentLog interface {
	List(ctx context.Context, f LogFilter) ([]models.LogRecord, error)
}

// Poller runs the feed loop. Cycle is the loop body.
type Poller interface {
	Cycle(ctx context.Context, st PollState) (PollState, *models.LogRecord, error)
	Run(ctx context.Context, interval time.Duration) error
}

// Service aggregates what the HTTP layer needs.
type Service struct {
	Webhook
	IncidentLog
	Authorization
}

var (
	_ Webhook       = (*WebhookService)(nil)
	_ IncidentLog   = (*IncidentLogService)(nil)
	_ Poller        = (*PollerService)(nil)
	_ Authorization = (*AuthService)(nil)
)
