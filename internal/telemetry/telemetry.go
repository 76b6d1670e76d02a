// Package telemetry exposes engine metrics in the Prometheus format.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sbilibin2017/gophpowa/internal/sampling"
)

const namespace = "gophpowa"

// Metrics holds the engine collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec   // kind, group, status
	RequestDuration *prometheus.HistogramVec // kind
	PointsRead      *prometheus.CounterVec   // family
	PointsSelected  *prometheus.CounterVec   // family
	Intervals       *prometheus.CounterVec   // family
	CounterResets   *prometheus.CounterVec   // family
	Detections      *prometheus.CounterVec   // result
	RangesCoalesced prometheus.Counter
	StoreUp         prometheus.Gauge
}

// New creates the collectors and registers them.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total series and ranking requests.",
		}, []string{"kind", "group", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of series and ranking requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		PointsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_read_total",
			Help:      "Snapshots read from the snapshot source.",
		}, []string{"family"}),
		PointsSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_selected_total",
			Help:      "Snapshots kept by the downsampler.",
		}, []string{"family"}),
		Intervals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intervals_total",
			Help:      "Sample intervals produced.",
		}, []string{"family"}),
		CounterResets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counter_resets_total",
			Help:      "Negative deltas clamped to the reset floor.",
		}, []string{"family"}),
		Detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_detections_total",
			Help:      "Capability detections by result.",
		}, []string{"result"}),
		RangesCoalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranges_coalesced_total",
			Help:      "Ranges produced by coalescing the current tail.",
		}),
		StoreUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_store_up",
			Help:      "Whether the snapshot store answered the last health check.",
		}),
	}

	reg.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.PointsRead,
		m.PointsSelected,
		m.Intervals,
		m.CounterResets,
		m.Detections,
		m.RangesCoalesced,
		m.StoreUp,
	)

	return m
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(kind, group, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(kind, group, status).Inc()
	m.RequestDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveSampling records one run of the sampling pipeline.
func (m *Metrics) ObserveSampling(family string, st sampling.Stats) {
	if m == nil {
		return
	}
	m.PointsRead.WithLabelValues(family).Add(float64(st.Points))
	m.PointsSelected.WithLabelValues(family).Add(float64(st.Selected))
	m.Intervals.WithLabelValues(family).Add(float64(st.Intervals))
	m.CounterResets.WithLabelValues(family).Add(float64(st.Resets))
}

// ObserveDetection records a capability detection outcome.
func (m *Metrics) ObserveDetection(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Detections.WithLabelValues(result).Inc()
}

// ObserveCoalesce records ranges produced by one coalescing pass.
func (m *Metrics) ObserveCoalesce(ranges int) {
	if m == nil {
		return
	}
	m.RangesCoalesced.Add(float64(ranges))
}

// SetStoreUp records the result of a store health check.
func (m *Metrics) SetStoreUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.StoreUp.Set(1)
		return
	}
	m.StoreUp.Set(0)
}
