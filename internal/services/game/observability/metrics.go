// Package observability holds the Prometheus metrics recorded by the game
// server.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "frj_game"

// Metrics holds all Prometheus metrics for the game server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	EventsTotal    *prometheus.CounterVec
	EventDuration  *prometheus.HistogramVec
	MailboxDepth   prometheus.Gauge
	Lobbies        prometheus.Gauge
	Games          *prometheus.GaugeVec
	EvictionsTotal *prometheus.CounterVec
	PushDrops      *prometheus.CounterVec
	StreamsOpen    *prometheus.GaugeVec
	RateLimited    prometheus.Counter
}

// NewMetrics creates and registers all metrics with the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EventsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registry_events_total",
				Help:      "Registry events processed by the actor",
			},
			[]string{"kind", "outcome"}, // outcome=ok or an error code
		),
		EventDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "registry_event_duration_seconds",
				Help:      "Time the actor spent on one event",
				Buckets:   []float64{.00001, .0001, .001, .01, .1},
			},
			[]string{"kind"},
		),
		MailboxDepth: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registry_mailbox_depth",
				Help:      "Events waiting in the registry mailbox",
			},
		),
		Lobbies: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "lobbies",
				Help:      "Lobbies waiting to start",
			},
		),
		Games: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "games",
				Help:      "Games in progress",
			},
			[]string{"game_type"},
		),
		EvictionsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evictions_total",
				Help:      "Sessions removed by the expiry sweep",
			},
			[]string{"phase"}, // phase=lobby/game
		),
		PushDrops: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "push_drops_total",
				Help:      "Pushes not delivered because the channel was closed or full",
			},
			[]string{"reason"},
		),
		StreamsOpen: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "streams_open",
				Help:      "Open client streams",
			},
			[]string{"rpc"},
		),
		RateLimited: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_rate_limited_total",
				Help:      "Game actions refused by the per-stream limiter",
			},
		),
	}
}

// ObserveEvent records one processed registry event.
func (m *Metrics) ObserveEvent(kind, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(kind, outcome).Inc()
	m.EventDuration.WithLabelValues(kind).Observe(took.Seconds())
}

// SetMailboxDepth records the current mailbox backlog.
func (m *Metrics) SetMailboxDepth(n int) {
	if m == nil {
		return
	}
	m.MailboxDepth.Set(float64(n))
}

// SetLobbies records the live lobby count.
func (m *Metrics) SetLobbies(n int) {
	if m == nil {
		return
	}
	m.Lobbies.Set(float64(n))
}

// SetGames records the live game count for one game type.
func (m *Metrics) SetGames(gameType string, n int) {
	if m == nil {
		return
	}
	m.Games.WithLabelValues(gameType).Set(float64(n))
}

// Evicted counts swept sessions.
func (m *Metrics) Evicted(phase string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.EvictionsTotal.WithLabelValues(phase).Add(float64(n))
}

// PushDropped counts an undelivered push.
func (m *Metrics) PushDropped(reason string) {
	if m == nil {
		return
	}
	m.PushDrops.WithLabelValues(reason).Inc()
}

// StreamOpened tracks a stream for its lifetime; call the returned func
// when it ends.
func (m *Metrics) StreamOpened(rpc string) func() {
	if m == nil {
		return func() {}
	}
	g := m.StreamsOpen.WithLabelValues(rpc)
	g.Inc()
	return g.Dec
}

// ActionRateLimited counts a refused action.
func (m *Metrics) ActionRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}
