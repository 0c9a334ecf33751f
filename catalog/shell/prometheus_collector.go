package shell

import (
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements MetricsCollector on a prometheus.Registerer.
// Vectors are created on first use with the label names of that first sample.
// Samples with a different label set are dropped.
type PrometheusCollector struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewPrometheusCollector creates a collector registering its vectors to registerer.
func NewPrometheusCollector(registerer prometheus.Registerer) *PrometheusCollector {
	return &PrometheusCollector{
		registerer: registerer,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

// RecordDuration observes duration in seconds.
func (c *PrometheusCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	c.mu.Lock()
	vec, ok := c.histograms[metric]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metric,
			Help:    "Duration of " + metric,
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, labelNames(labels))
		if !c.register(vec) {
			c.mu.Unlock()
			return
		}
		c.histograms[metric] = vec
	}
	c.mu.Unlock()

	if observer, err := vec.GetMetricWith(labels); err == nil {
		observer.Observe(duration.Seconds())
	}
}

// IncrementCounter adds one.
func (c *PrometheusCollector) IncrementCounter(metric string, labels map[string]string) {
	c.mu.Lock()
	vec, ok := c.counters[metric]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metric,
			Help: "Count of " + metric,
		}, labelNames(labels))
		if !c.register(vec) {
			c.mu.Unlock()
			return
		}
		c.counters[metric] = vec
	}
	c.mu.Unlock()

	if counter, err := vec.GetMetricWith(labels); err == nil {
		counter.Inc()
	}
}

// RecordValue sets a gauge.
func (c *PrometheusCollector) RecordValue(metric string, value float64, labels map[string]string) {
	c.mu.Lock()
	vec, ok := c.gauges[metric]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: metric,
			Help: "Last value of " + metric,
		}, labelNames(labels))
		if !c.register(vec) {
			c.mu.Unlock()
			return
		}
		c.gauges[metric] = vec
	}
	c.mu.Unlock()

	if gauge, err := vec.GetMetricWith(labels); err == nil {
		gauge.Set(value)
	}
}

func (c *PrometheusCollector) register(collector prometheus.Collector) bool {
	return c.registerer.Register(collector) == nil
}

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
