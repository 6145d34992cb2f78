package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_RecordSimulation(t *testing.T) {
	r := NewPrometheusRecorder()

	r.RecordSimulation("rr", 3, time.Millisecond, nil)
	r.RecordSimulation("rr", 2, time.Millisecond, nil)
	r.RecordSimulation("rr", 4, time.Millisecond, errors.New("bad quantum"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.simulationCounter.WithLabelValues("rr", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.simulationCounter.WithLabelValues("rr", "failed")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.simulatedProcesses.WithLabelValues("rr")))
}

func TestPrometheusRecorder_RecordRejection(t *testing.T) {
	r := NewPrometheusRecorder()

	r.RecordRejection("validation")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejectedRequests.WithLabelValues("validation")))
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	r := NewPrometheusRecorder()
	r.RecordSimulation("fcfs", 1, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `scheduler_simulations_total{algorithm="fcfs",status="success"} 1`)
	assert.Contains(t, string(body), "scheduler_simulation_duration_seconds_bucket")
}

func TestPrometheusRecorder_GetRegistry(t *testing.T) {
	r := NewPrometheusRecorder()
	r.RecordSimulation("sjf", 2, time.Millisecond, nil)
	r.RecordRejection("invalid_body")

	count, err := testutil.GatherAndCount(r.GetRegistry(),
		"scheduler_simulations_total",
		"scheduler_simulated_processes_total",
		"scheduler_rejected_requests_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	families, err := r.GetRegistry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
	assert.Contains(t, names, "scheduler_simulation_duration_seconds")
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	r.RecordSimulation("fcfs", 1, time.Second, nil)
	r.RecordRejection("validation")
}
