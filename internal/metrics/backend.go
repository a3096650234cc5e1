package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics tracks calls made to the order backend.
type BackendMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

// NewBackendMetrics registers collectors on the default registerer.
func NewBackendMetrics() *BackendMetrics {
	return NewBackendMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewBackendMetricsWithRegisterer registers collectors on registerer, reusing existing ones.
func NewBackendMetricsWithRegisterer(registerer prometheus.Registerer) *BackendMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &BackendMetrics{
		requests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orderdesk_backend_requests_total",
			Help: "Total number of requests sent to the order backend",
		}, []string{"method", "code"}),
		duration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "orderdesk_backend_request_duration_seconds",
			Help:    "Duration of order backend requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		inflight: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "orderdesk_backend_requests_in_flight",
			Help: "Number of order backend requests currently in flight",
		}),
	}
}

// Started marks a request as in flight.
func (m *BackendMetrics) Started() {
	m.inflight.Inc()
}

// Observe records a finished request. Code 0 stands for a transport failure.
func (m *BackendMetrics) Observe(method string, code int, elapsed time.Duration) {
	m.inflight.Dec()
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(method, label).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
