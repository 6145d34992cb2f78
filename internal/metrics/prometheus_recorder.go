package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives one call per simulation and per rejected request.
type Recorder interface {
	RecordSimulation(algorithm string, processCount int, duration time.Duration, err error)
	RecordRejection(reason string)
}

// PrometheusRecorder is a Prometheus implementation of Recorder backed by its own registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	simulationCounter  *prometheus.CounterVec
	simulationDuration *prometheus.HistogramVec
	simulatedProcesses *prometheus.CounterVec
	rejectedRequests   *prometheus.CounterVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	// Register Go standard metrics and process/OS metrics.
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &PrometheusRecorder{
		registry: registry,
		simulationCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulations_total",
			Help: "Total number of simulations by algorithm and status.",
		}, []string{"algorithm", "status"}),
		simulationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_simulation_duration_seconds",
			Help:    "Wall clock time spent computing a schedule.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"algorithm"}),
		simulatedProcesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulated_processes_total",
			Help: "Total processes scheduled by algorithm.",
		}, []string{"algorithm"}),
		rejectedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_rejected_requests_total",
			Help: "Total requests rejected before simulation, by reason.",
		}, []string{"reason"}),
	}

	registry.MustRegister(r.simulationCounter)
	registry.MustRegister(r.simulationDuration)
	registry.MustRegister(r.simulatedProcesses)
	registry.MustRegister(r.rejectedRequests)

	return r
}

// GetRegistry returns the Prometheus registry.
func (r *PrometheusRecorder) GetRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *PrometheusRecorder) RecordSimulation(algorithm string, processCount int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	r.simulationCounter.WithLabelValues(algorithm, status).Inc()
	if err != nil {
		return
	}
	r.simulationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.simulatedProcesses.WithLabelValues(algorithm).Add(float64(processCount))
}

func (r *PrometheusRecorder) RecordRejection(reason string) {
	r.rejectedRequests.WithLabelValues(reason).Inc()
}

// NopRecorder drops everything. Used by the CLI.
type NopRecorder struct{}

func (NopRecorder) RecordSimulation(string, int, time.Duration, error) {}
func (NopRecorder) RecordRejection(string)                             {}
