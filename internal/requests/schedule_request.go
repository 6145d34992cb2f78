package requests

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
	"cpu-simulator/internal/schedulers"
)

type Process struct {
	ID          string  `json:"id" yaml:"id"`
	ArrivalTime float64 `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime   float64 `json:"burstTime" yaml:"burstTime"`
	Priority    *int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

type ScheduleRequest struct {
	Algorithm   string    `json:"algorithm" yaml:"algorithm"`
	Processes   []Process `json:"processes" yaml:"processes"`
	TimeQuantum *float64  `json:"timeQuantum,omitempty" yaml:"timeQuantum,omitempty"`
}

// CompareRequest runs several algorithms over one process set. An empty
// Algorithms list means every supported algorithm.
type CompareRequest struct {
	Algorithms  []string  `json:"algorithms" yaml:"algorithms"`
	Processes   []Process `json:"processes" yaml:"processes"`
	TimeQuantum *float64  `json:"timeQuantum,omitempty" yaml:"timeQuantum,omitempty"`
}

// DefaultMaxDispatches bounds the Round Robin slices one simulation may produce.
const DefaultMaxDispatches = 1_000_000

// Limits caps the work a single request may ask for. A zero field disables
// that check.
type Limits struct {
	MaxDispatches int
}

func DefaultLimits() Limits {
	return Limits{MaxDispatches: DefaultMaxDispatches}
}

// Validate checks the request and resolves its algorithm. The returned error
// aggregates every problem found; see FieldErrors.
func (r *ScheduleRequest) Validate(limits Limits) (schedulers.Algorithm, error) {
	var result *multierror.Error

	algorithm, err := schedulers.ParseAlgorithm(r.Algorithm)
	if err != nil {
		result = multierror.Append(result, &responses.FieldError{Field: "algorithm", Message: unknownAlgorithmMessage(r.Algorithm)})
	}

	result = multierror.Append(result, validateProcesses(r.Processes, algorithm.RequiresPriority()))
	if algorithm.RequiresTimeQuantum() {
		result = multierror.Append(result, validateTimeQuantum(r.Processes, r.TimeQuantum, limits))
	}
	return algorithm, result.ErrorOrNil()
}

// Options returns the engine options carried by the request.
func (r *ScheduleRequest) Options() schedulers.Options {
	return options(r.TimeQuantum)
}

func (r *CompareRequest) Validate(limits Limits) ([]schedulers.Algorithm, error) {
	var result *multierror.Error

	names := r.Algorithms
	if len(names) == 0 {
		names = make([]string, 0, len(schedulers.Algorithms))
		for _, algorithm := range schedulers.Algorithms {
			names = append(names, string(algorithm))
		}
	}

	algorithms := make([]schedulers.Algorithm, 0, len(names))
	seen := make(map[schedulers.Algorithm]bool, len(names))
	requiresPriority, requiresTimeQuantum := false, false
	for i, name := range names {
		algorithm, err := schedulers.ParseAlgorithm(name)
		if err != nil {
			result = multierror.Append(result, &responses.FieldError{
				Field:   fmt.Sprintf("algorithms[%d]", i),
				Message: unknownAlgorithmMessage(name),
			})
			continue
		}
		if seen[algorithm] {
			continue
		}
		seen[algorithm] = true
		algorithms = append(algorithms, algorithm)
		requiresPriority = requiresPriority || algorithm.RequiresPriority()
		requiresTimeQuantum = requiresTimeQuantum || algorithm.RequiresTimeQuantum()
	}

	result = multierror.Append(result, validateProcesses(r.Processes, requiresPriority))
	if requiresTimeQuantum {
		result = multierror.Append(result, validateTimeQuantum(r.Processes, r.TimeQuantum, limits))
	}
	return algorithms, result.ErrorOrNil()
}

func (r *CompareRequest) Options() schedulers.Options {
	return options(r.TimeQuantum)
}

// ToProcessSpecs converts validated request processes into engine input.
func ToProcessSpecs(processes []Process) []core.ProcessSpec {
	specs := make([]core.ProcessSpec, 0, len(processes))
	for _, process := range processes {
		specs = append(specs, core.ProcessSpec{
			ID:          strings.TrimSpace(process.ID),
			ArrivalTime: process.ArrivalTime,
			BurstTime:   process.BurstTime,
			Priority:    process.Priority,
		})
	}
	return specs
}

// FieldErrors flattens an error returned by Validate.
func FieldErrors(err error) []responses.FieldError {
	if err == nil {
		return nil
	}

	var errs []error
	var merr *multierror.Error
	if errors.As(err, &merr) {
		errs = merr.Errors
	} else {
		errs = []error{err}
	}

	details := make([]responses.FieldError, 0, len(errs))
	for _, e := range errs {
		var fieldErr *responses.FieldError
		if errors.As(e, &fieldErr) {
			details = append(details, *fieldErr)
			continue
		}
		details = append(details, responses.FieldError{Message: e.Error()})
	}
	return details
}

// AsAPIError wraps a validation error into the API error body.
func AsAPIError(err error) *responses.APIError {
	return responses.NewValidationError("invalid input data", FieldErrors(err)...)
}

func validateProcesses(processes []Process, requirePriority bool) error {
	var result *multierror.Error
	if len(processes) == 0 {
		return multierror.Append(result, &responses.FieldError{Field: "processes", Message: "at least one process is required"})
	}

	seen := make(map[string]int, len(processes))
	for i, process := range processes {
		field := fmt.Sprintf("processes[%d]", i)
		id := strings.TrimSpace(process.ID)

		if id == "" {
			result = multierror.Append(result, &responses.FieldError{Field: field + ".id", Message: "is required"})
		} else if first, ok := seen[id]; ok {
			result = multierror.Append(result, &responses.FieldError{
				Field:   field + ".id",
				Message: fmt.Sprintf("duplicate id %q, first used by processes[%d]", id, first),
			})
		} else {
			seen[id] = i
		}

		if !finite(process.ArrivalTime) || process.ArrivalTime < 0 {
			result = multierror.Append(result, &responses.FieldError{Field: field + ".arrivalTime", Message: "must be a non-negative number"})
		}
		if !finite(process.BurstTime) || process.BurstTime <= 0 {
			result = multierror.Append(result, &responses.FieldError{Field: field + ".burstTime", Message: "must be a positive number"})
		}
		if requirePriority && process.Priority == nil {
			result = multierror.Append(result, &responses.FieldError{Field: field + ".priority", Message: "is required for priority scheduling"})
		}
	}
	return result.ErrorOrNil()
}

func validateTimeQuantum(processes []Process, timeQuantum *float64, limits Limits) error {
	if timeQuantum == nil || !schedulers.ValidTimeQuantum(*timeQuantum) {
		return &responses.FieldError{Field: "timeQuantum", Message: "Invalid time quantum for Round Robin"}
	}
	if limits.MaxDispatches <= 0 || validateProcesses(processes, false) != nil {
		return nil
	}

	dispatches := schedulers.RoundRobinDispatches(ToProcessSpecs(processes), *timeQuantum)
	if dispatches > float64(limits.MaxDispatches) {
		return &responses.FieldError{
			Field:   "timeQuantum",
			Message: fmt.Sprintf("time quantum %v needs %.0f slices, more than the limit of %d", *timeQuantum, dispatches, limits.MaxDispatches),
		}
	}
	return nil
}

func unknownAlgorithmMessage(name string) string {
	return fmt.Sprintf("Unknown scheduling algorithm %q", name)
}

func options(timeQuantum *float64) schedulers.Options {
	if timeQuantum == nil {
		return schedulers.Options{}
	}
	return schedulers.Options{TimeQuantum: *timeQuantum}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
