package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is shared by every store. A nil *Metrics records nothing.
type Metrics struct {
	CacheHits    *prometheus.CounterVec
	Refetches    *prometheus.CounterVec
	LoadFailures *prometheus.CounterVec
	Mutations    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workly",
			Subsystem: "store",
			Name:      "cache_hits_total",
			Help:      "List loads served from cache.",
		}, []string{"resource"}),
		Refetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workly",
			Subsystem: "store",
			Name:      "refetches_total",
			Help:      "List fetches sent to the API.",
		}, []string{"resource"}),
		LoadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workly",
			Subsystem: "store",
			Name:      "load_failures_total",
			Help:      "List loads that failed.",
		}, []string{"resource"}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workly",
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Mutations by operation and outcome.",
		}, []string{"resource", "op", "outcome"}),
	}
}

func (m *Metrics) cacheHit(resource string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(resource).Inc()
}

func (m *Metrics) refetch(resource string) {
	if m == nil {
		return
	}
	m.Refetches.WithLabelValues(resource).Inc()
}

func (m *Metrics) loadFailed(resource string) {
	if m == nil {
		return
	}
	m.LoadFailures.WithLabelValues(resource).Inc()
}

func (m *Metrics) mutation(resource string, op Op, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.Mutations.WithLabelValues(resource, string(op), outcome).Inc()
}
