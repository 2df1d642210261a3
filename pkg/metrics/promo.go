package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromoMetrics records outcomes of the recurring promotion processes.
type PromoMetrics struct {
	tickDuration *prometheus.HistogramVec
	applied      *prometheus.CounterVec
	skipped      *prometheus.CounterVec
}

// NewPromoMetrics registers the promotion metrics on the provided registerer.
func NewPromoMetrics(reg prometheus.Registerer) *PromoMetrics {
	if reg == nil {
		return &PromoMetrics{}
	}
	tickDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "promo_tick_duration_seconds",
		Help:    "Duration of promotion scheduler ticks in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	applied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "promo_ticks_applied",
		Help: "Promotion ticks that flagged a product.",
	}, []string{"kind"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "promo_ticks_skipped",
		Help: "Promotion ticks that found no eligible product.",
	}, []string{"kind"})
	reg.MustRegister(tickDuration, applied, skipped)
	return &PromoMetrics{
		tickDuration: tickDuration,
		applied:      applied,
		skipped:      skipped,
	}
}

// ObserveTick records the duration of one tick for the given promotion kind.
func (p *PromoMetrics) ObserveTick(kind string, duration time.Duration) {
	if p == nil || p.tickDuration == nil {
		return
	}
	p.tickDuration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
}

// IncApplied increments the applied counter for the given promotion kind.
func (p *PromoMetrics) IncApplied(kind string) {
	if p == nil || p.applied == nil {
		return
	}
	p.applied.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncSkipped increments the skipped counter for the given promotion kind.
func (p *PromoMetrics) IncSkipped(kind string) {
	if p == nil || p.skipped == nil {
		return
	}
	p.skipped.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
