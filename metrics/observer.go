// Package metrics exports delegate cache activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/on-the-ground/immutable_ive_go/delegate"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"

	outcomeOK      = "ok"
	outcomeFailure = "error"
)

var _ delegate.Observer = (*Observer)(nil)

// Observer counts cache lookups and builds.
type Observer struct {
	lookups  *prometheus.CounterVec
	builds   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewObserver creates the collectors under namespace and registers them with reg.
// A nil reg leaves them unregistered.
func NewObserver(namespace string, reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Generated operation lookups by kind and cache result",
			},
			[]string{"kind", "result"},
		),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "builds_total",
				Help:      "Generated operation builds by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "build_duration_seconds",
				Help:      "Time spent building generated operations",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
			},
			[]string{"kind"},
		),
	}
	if reg == nil {
		return o, nil
	}
	for _, c := range o.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Collectors returns every collector owned by the observer.
func (o *Observer) Collectors() []prometheus.Collector {
	return []prometheus.Collector{o.lookups, o.builds, o.duration}
}

func (o *Observer) ObserveLookup(kind delegate.Kind, hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}
	o.lookups.WithLabelValues(kind.String(), result).Inc()
}

func (o *Observer) ObserveBuild(event delegate.BuildEvent) {
	outcome := outcomeOK
	if event.Err != nil {
		outcome = outcomeFailure
	}
	o.builds.WithLabelValues(event.Kind.String(), outcome).Inc()
	o.duration.WithLabelValues(event.Kind.String()).Observe(event.Took().Seconds())
}
