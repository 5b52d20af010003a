package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quadnet"

// Collector exposes training and classification counters on its own registry.
type Collector struct {
	registry    *prometheus.Registry
	steps       prometheus.Counter
	loss        prometheus.Gauge
	stepSeconds prometheus.Histogram
	predictions *prometheus.CounterVec
}

// NewCollector creates and registers the collector metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "training_steps_total",
			Help:      "Number of single-sample learning steps applied.",
		}),
		loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "training_loss",
			Help:      "Average squared error over the last logging window.",
		}),
		stepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_seconds",
			Help:      "Wall time of one learning step.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Classified points by predicted label.",
		}, []string{"label"}),
	}
	c.registry.MustRegister(c.steps, c.loss, c.stepSeconds, c.predictions)
	return c
}

// ObserveStep records one learning step.
func (c *Collector) ObserveStep(d time.Duration) {
	c.steps.Inc()
	c.stepSeconds.Observe(d.Seconds())
}

// SetLoss publishes the latest window loss.
func (c *Collector) SetLoss(loss float64) {
	c.loss.Set(loss)
}

// ObservePrediction counts one classified point.
func (c *Collector) ObservePrediction(label string) {
	c.predictions.WithLabelValues(label).Inc()
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
