package schedulers

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-simulator/internal/core"
)

type fakeRecorder struct {
	mu          sync.Mutex
	simulations map[string]int
	failures    int
}

func (f *fakeRecorder) RecordSimulation(algorithm string, _ int, _ time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.simulations == nil {
		f.simulations = make(map[string]int)
	}
	if err != nil {
		f.failures++
		return
	}
	f.simulations[algorithm]++
}

func (f *fakeRecorder) RecordRejection(string) {}

func newTestEngine(recorder *fakeRecorder) (*Engine, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewEngine(logger, recorder), &buf
}

func TestEngine_Run(t *testing.T) {
	recorder := &fakeRecorder{}
	engine, logs := newTestEngine(recorder)
	specs := []core.ProcessSpec{proc("P1", 0, 5), proc("P2", 1, 3)}

	response, err := engine.Run(context.Background(), ShortestJobFirst, specs, Options{})
	require.NoError(t, err)

	assert.Equal(t, "SJF", response.Algorithm)
	assert.Equal(t, 1, recorder.simulations["sjf"])
	assert.Contains(t, logs.String(), "algorithm=sjf")
}

func TestEngine_RunRecordsFailures(t *testing.T) {
	recorder := &fakeRecorder{}
	engine, _ := newTestEngine(recorder)

	_, err := engine.Run(context.Background(), RoundRobin, []core.ProcessSpec{proc("A", 0, 1)}, Options{TimeQuantum: -1})

	assert.ErrorIs(t, err, ErrInvalidTimeQuantum)
	assert.Equal(t, 1, recorder.failures)
}

func TestEngine_RunCanceled(t *testing.T) {
	engine, _ := newTestEngine(&fakeRecorder{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, FirstComeFirstServe, []core.ProcessSpec{proc("A", 0, 1)}, Options{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Compare(t *testing.T) {
	recorder := &fakeRecorder{}
	engine, _ := newTestEngine(recorder)
	specs := []core.ProcessSpec{
		procWithPriority("P1", 0, 8, 3),
		procWithPriority("P2", 1, 4, 1),
		procWithPriority("P3", 2, 9, 2),
		procWithPriority("P4", 3, 5, 4),
	}

	results, err := engine.Compare(context.Background(), Algorithms, specs, Options{TimeQuantum: 3})
	require.NoError(t, err)
	require.Len(t, results, len(Algorithms))

	for i, algorithm := range Algorithms {
		assert.Equal(t, string(algorithm), results[i].Algorithm)
		assert.Equal(t, algorithm.DisplayName(), results[i].Result.Algorithm)
		assertScheduleInvariants(t, specs, results[i].Result)
		assert.Equal(t, 1, recorder.simulations[string(algorithm)])
	}

	// same process set, so every algorithm finishes at the same makespan
	for _, result := range results {
		assert.InDelta(t, 26.0, result.Result.TotalTime, delta)
	}
}

func TestEngine_CompareFailsAsAWhole(t *testing.T) {
	engine, _ := newTestEngine(&fakeRecorder{})

	results, err := engine.Compare(context.Background(), []Algorithm{FirstComeFirstServe, RoundRobin}, []core.ProcessSpec{proc("A", 0, 1)}, Options{})

	assert.ErrorIs(t, err, ErrInvalidTimeQuantum)
	assert.Nil(t, results)
}

func TestNewEngine_Defaults(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Run(context.Background(), FirstComeFirstServe, []core.ProcessSpec{proc("A", 0, 1)}, Options{})
	assert.NoError(t, err)
}
