// Package metrics defines the Prometheus collectors of the gallery server and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"face-gallery/pkg/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the gallery.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	RendersTotal         *prometheus.CounterVec
	EntriesRendered      *prometheus.CounterVec
	RenderSize           prometheus.Histogram
	CatalogLoadsTotal    *prometheus.CounterVec
	CatalogPeople        prometheus.Gauge
	CatalogImages        prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil reg uses a fresh
// registry, so several instances can coexist in tests.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		RendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gallery_renders_total",
				Help: "Gallery render passes by whether a name filter was set.",
			},
			[]string{"filtered"},
		),
		EntriesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gallery_entries_rendered_total",
				Help: "Gallery cards produced by kind (image, missing).",
			},
			[]string{"kind"},
		),
		RenderSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gallery_render_entries",
				Help:    "Number of cards produced per render pass.",
				Buckets: []float64{0, 1, 5, 10, 35, 70, 140, 350},
			},
		),
		CatalogLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gallery_catalog_loads_total",
				Help: "Catalog load attempts by result (success, error).",
			},
			[]string{"result"},
		),
		CatalogPeople: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "gallery_catalog_people",
				Help: "People in the loaded face directory.",
			},
		),
		CatalogImages: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "gallery_catalog_images",
				Help: "Displayable filenames in the loaded face directory.",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.RendersTotal,
		m.EntriesRendered,
		m.RenderSize,
		m.CatalogLoadsTotal,
		m.CatalogPeople,
		m.CatalogImages,
	)

	return m
}

// ObserveRender records one render pass.
func (m *Metrics) ObserveRender(page models.Page) {
	filtered := "false"
	if page.Filter != "" {
		filtered = "true"
	}
	m.RendersTotal.WithLabelValues(filtered).Inc()
	m.RenderSize.Observe(float64(page.Rendered()))
	for _, e := range page.Entries {
		m.EntriesRendered.WithLabelValues(string(e.Kind)).Inc()
	}
}

// ObserveCatalog records the outcome of a catalog load.
func (m *Metrics) ObserveCatalog(summary *models.CatalogSummary, err error) {
	if err != nil {
		m.CatalogLoadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.CatalogLoadsTotal.WithLabelValues("success").Inc()
	if summary != nil {
		m.CatalogPeople.Set(float64(summary.People))
		m.CatalogImages.Set(float64(summary.Images))
	}
}

// Handler returns the Prometheus scrape HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
