// Package metrics exposes client core activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives counters and gauges from the client core.
// Calls are made with the client lock held and must not block.
type Recorder interface {
	ServerAdded()
	ServerRemoved()
	EventDispatched(eventType string)
	HeartbeatSent(status string)
	WakeDelay(seconds uint32)
	ObjectCount(n int)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) ServerAdded()           {}
func (NoopRecorder) ServerRemoved()         {}
func (NoopRecorder) EventDispatched(string) {}
func (NoopRecorder) HeartbeatSent(string)   {}
func (NoopRecorder) WakeDelay(uint32)       {}
func (NoopRecorder) ObjectCount(int)        {}

const namespace = "lwm2m_client"

// Collector records client metrics into a Prometheus registry.
type Collector struct {
	registry   *prometheus.Registry
	servers    prometheus.Gauge
	objects    prometheus.Gauge
	events     *prometheus.CounterVec
	heartbeats *prometheus.CounterVec
	wakeDelay  prometheus.Gauge
}

// NewCollector creates a Collector registered on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		servers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "servers",
			Help:      "Number of configured management servers.",
		}),
		objects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "custom_objects",
			Help:      "Number of registered custom objects.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Events delivered to the application callback.",
		}, []string{"type"}),
		heartbeats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Registration updates forced by heartbeats, by outcome.",
		}, []string{"status"}),
		wakeDelay: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "next_wake_delay_seconds",
			Help:      "Last computed delay until the client must act.",
		}),
	}
	c.registry.MustRegister(c.servers, c.objects, c.events, c.heartbeats, c.wakeDelay)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler serving the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) ServerAdded()   { c.servers.Inc() }
func (c *Collector) ServerRemoved() { c.servers.Dec() }

func (c *Collector) EventDispatched(eventType string) {
	c.events.WithLabelValues(eventType).Inc()
}

func (c *Collector) HeartbeatSent(status string) {
	c.heartbeats.WithLabelValues(status).Inc()
}

// WakeDelay records the computed delay. The no-deadline sentinel is recorded as-is.
func (c *Collector) WakeDelay(seconds uint32) {
	c.wakeDelay.Set(float64(seconds))
}

func (c *Collector) ObjectCount(n int) {
	c.objects.Set(float64(n))
}

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*Collector)(nil)
)
