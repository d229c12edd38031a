package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Sources of detected incidents.
const (
	SourceWebhook = "webhook"
	SourceFeed    = "feed"
)

// Poll cycle results.
const (
	CycleBaseline  = "baseline"
	CycleNew       = "new"
	CycleUnchanged = "unchanged"
	CycleEmpty     = "empty"
	CycleFetchErr  = "fetch_error"
	CycleStoreErr  = "store_error"
)

var (
	webhookEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "status_monitor_webhook_events_total",
		Help: "Webhook deliveries by outcome.",
	}, []string{"outcome"})

	incidents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "status_monitor_incidents_total",
		Help: "Incidents surfaced by source and product label.",
	}, []string{"source", "product"})

	pollCycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "status_monitor_poll_cycles_total",
		Help: "Feed poll cycles by result.",
	}, []string{"result"})

	lastSeen = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "status_monitor_feed_last_seen_timestamp_seconds",
		Help: "Publish time of the newest feed entry seen.",
	})

	registerOnce sync.Once
)

// Register adds the collectors to the default registry. Safe to call repeatedly.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(webhookEvents, incidents, pollCycles, lastSeen)
	})
}

func WebhookEvent(outcome string) { webhookEvents.WithLabelValues(outcome).Inc() }

func Incident(source, product string) { incidents.WithLabelValues(source, product).Inc() }

func PollCycle(result string) { pollCycles.WithLabelValues(result).Inc() }

// LastSeen records the feed baseline as unix seconds.
func LastSeen(unix float64) { lastSeen.Set(unix) }
