package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"status_monitor/internal/classifier"
	"status_monitor/internal/feed"
	"status_monitor/internal/logger"
	"status_monitor/internal/metrics"
	"status_monitor/internal/models"
	"status_monitor/internal/repository"
)

// DefaultPollInterval is the fixed sleep between feed cycles.
const DefaultPollInterval = 30 * time.Second

// PollState is the poller's dedup state. It lives only in memory.
type PollState struct {
	LastSeen    time.Time
	Initialized bool
}

// PollerService detects new feed entries by strictly increasing publish time.
type PollerService struct {
	fetcher    feed.Fetcher
	store      repository.LogStore
	classifier *classifier.Classifier
	out        io.Writer
	log        *logger.Logger
}

func NewPollerService(fetcher feed.Fetcher, store repository.LogStore, c *classifier.Classifier, out io.Writer, log *logger.Logger) *PollerService {
	if out == nil {
		out = io.Discard
	}
	return &PollerService{
		fetcher:    fetcher,
		store:      store,
		classifier: c,
		out:        out,
		log:        log,
	}
}

// Cycle runs one poll against st and returns the next state plus the record
// written, if any. The first successful fetch only sets the baseline. On any
// error the returned state equals st.
func (s *PollerService) Cycle(ctx context.Context, st PollState) (PollState, *models.LogRecord, error) {
	entries, err := s.fetcher.Fetch(ctx)
	if err != nil {
		metrics.PollCycle(metrics.CycleFetchErr)
		return st, nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	if len(entries) == 0 {
		metrics.PollCycle(metrics.CycleEmpty)
		return st, nil, ErrFeedEmpty
	}

	newest := entries[0]
	if newest.Published.IsZero() {
		metrics.PollCycle(metrics.CycleFetchErr)
		return st, nil, fmt.Errorf("%w: newest entry %q has no publish date", ErrFetchFailure, newest.Title)
	}

	if !st.Initialized {
		metrics.PollCycle(metrics.CycleBaseline)
		metrics.LastSeen(float64(newest.Published.Unix()))
		return PollState{LastSeen: newest.Published, Initialized: true}, nil, nil
	}
	if !newest.Published.After(st.LastSeen) {
		metrics.PollCycle(metrics.CycleUnchanged)
		return st, nil, nil
	}

	rec := s.newRecord(newest)
	_, _ = io.WriteString(s.out, formatFeedBlock(rec))

	if err := s.store.Append(ctx, rec); err != nil {
		metrics.PollCycle(metrics.CycleStoreErr)
		return st, nil, fmt.Errorf("%w: append incident %q: %v", ErrPersistence, rec.Event, err)
	}

	metrics.PollCycle(metrics.CycleNew)
	metrics.Incident(metrics.SourceFeed, rec.Product)
	metrics.LastSeen(float64(newest.Published.Unix()))
	return PollState{LastSeen: newest.Published, Initialized: true}, &rec, nil
}

func (s *PollerService) newRecord(e models.FeedEntry) models.LogRecord {
	text := strings.TrimSpace(e.Title + " " + e.Summary)
	return models.LogRecord{
		Timestamp: formatTimestamp(e.Published),
		Product:   s.classifier.Classify(text),
		Event:     e.Title,
		Status:    e.Summary,
	}
}

// Run polls forever, sleeping interval after every cycle whatever its outcome.
// It returns on a persistence failure or when ctx is done.
func (s *PollerService) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	var st PollState
	for {
		next, rec, err := s.Cycle(ctx, st)
		switch {
		case errors.Is(err, ErrPersistence):
			return err
		case errors.Is(err, ErrFeedEmpty):
			s.warn("poll_feed_empty", "err", err)
		case err != nil:
			s.warn("poll_fetch_failed", "err", err)
		case rec != nil:
			s.info("poll_new_incident", "product", rec.Product, "event", rec.Event, "published", rec.Timestamp)
		case !st.Initialized && next.Initialized:
			s.info("poll_initialized", "last_seen", next.LastSeen.Format(time.RFC3339))
		}
		st = next

		t := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (s *PollerService) info(msg string, kv ...interface{}) {
	if s.log != nil {
		s.log.Infow(msg, kv...)
	}
}

func (s *PollerService) warn(msg string, kv ...interface{}) {
	if s.log != nil {
		s.log.Warnw(msg, kv...)
	}
}
