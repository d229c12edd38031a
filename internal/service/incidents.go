package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"status_monitor/internal/models"
	"status_monitor/internal/repository"
)

// LogFilter narrows incident history by time range and product.
type LogFilter struct {
	From    time.Time // inclusive; zero means no lower bound
	To      time.Time // inclusive; zero means no upper bound
	Product string    // exact label; empty means any
}

type IncidentLogService struct {
	store repository.LogStore
}

func NewIncidentLogService(store repository.LogStore) *IncidentLogService {
	return &IncidentLogService{store: store}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeAndValidateFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From:    normalizeToUTC(f.From),
		To:      normalizeToUTC(f.To),
		Product: strings.TrimSpace(f.Product),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, errInvalidTimeRange
	}
	return out, nil
}

func (s *IncidentLogService) List(ctx context.Context, f LogFilter) ([]models.LogRecord, error) {
	nf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, nf.From, nf.To, nf.Product)
}
