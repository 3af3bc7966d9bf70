// Package metrics exposes progression counters over Prometheus for hosts
// that scrape the plugin.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates every metric the plugin publishes.
type Collector struct {
	registry *prometheus.Registry

	Epochs      prometheus.Counter
	Captures    prometheus.Counter
	DecayEvents prometheus.Counter
	Points      prometheus.Gauge
	Streak      prometheus.Gauge
	TravelXP    prometheus.Gauge
}

// New builds a collector on a dedicated registry so plugin metrics never
// collide with the host's default registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vitae", Name: "epochs_total",
			Help: "Host epochs observed.",
		}),
		Captures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vitae", Name: "captures_total",
			Help: "Handshake captures processed.",
		}),
		DecayEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vitae", Name: "decay_events_total",
			Help: "Decay applications that removed points.",
		}),
		Points: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vitae", Name: "points",
			Help: "Current network points.",
		}),
		Streak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vitae", Name: "streak",
			Help: "Current consecutive-capture streak.",
		}),
		TravelXP: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vitae", Name: "travel_xp",
			Help: "Cumulative traveler XP.",
		}),
	}
	reg.MustRegister(c.Epochs, c.Captures, c.DecayEvents, c.Points, c.Streak, c.TravelXP)
	return c
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
