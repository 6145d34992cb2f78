package schedulers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/metrics"
	"cpu-simulator/internal/responses"
)

// Engine wraps the pure algorithms with logging and metrics. It holds no
// simulation state and is safe for concurrent use.
type Engine struct {
	logger   *slog.Logger
	recorder metrics.Recorder
}

func NewEngine(logger *slog.Logger, recorder metrics.Recorder) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &Engine{logger: logger, recorder: recorder}
}

func (e *Engine) Run(ctx context.Context, algorithm Algorithm, processes []core.ProcessSpec, opts Options) (responses.ScheduleResponse, error) {
	if err := ctx.Err(); err != nil {
		return responses.ScheduleResponse{}, err
	}

	e.logger.Debug("running scheduler",
		"algorithm", string(algorithm),
		"processes", len(processes),
		"time_quantum", opts.TimeQuantum,
	)

	started := time.Now()
	response, err := Schedule(algorithm, processes, opts)
	elapsed := time.Since(started)
	e.recorder.RecordSimulation(string(algorithm), len(processes), elapsed, err)
	if err != nil {
		e.logger.Warn("scheduler failed", "algorithm", string(algorithm), "error", err)
		return responses.ScheduleResponse{}, err
	}

	e.logger.Debug("scheduler finished",
		"algorithm", string(algorithm),
		"makespan", response.TotalTime,
		"avg_waiting_time", response.AvgWaitingTime,
		"elapsed", elapsed,
	)
	return response, nil
}

// Compare runs every algorithm on the same processes in parallel. Results
// keep the order of algorithms; the first failure cancels the rest.
func (e *Engine) Compare(ctx context.Context, algorithms []Algorithm, processes []core.ProcessSpec, opts Options) ([]responses.CompareResponse, error) {
	results := make([]responses.CompareResponse, len(algorithms))

	g, ctx := errgroup.WithContext(ctx)
	for i, algorithm := range algorithms {
		i, algorithm := i, algorithm
		g.Go(func() error {
			response, err := e.Run(ctx, algorithm, processes, opts)
			if err != nil {
				return err
			}
			results[i] = responses.CompareResponse{Algorithm: string(algorithm), Result: response}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
