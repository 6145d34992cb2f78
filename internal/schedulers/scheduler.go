// Package schedulers implements the scheduling algorithms. Each algorithm is
// a pure function of its input: it copies the processes it is given, drives a
// private simulated CPU and returns a complete report.
package schedulers

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}

var (
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
	ErrInvalidTimeQuantum = errors.New("invalid time quantum for round robin")
)

// ParseAlgorithm accepts an algorithm name in any case.
func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	switch algorithm {
	case FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin:
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// DisplayName is the algorithm name reported in a ScheduleResponse.
func (a Algorithm) DisplayName() string {
	switch a {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF"
	case Priority:
		return "Priority Scheduling"
	case RoundRobin:
		return "Round Robin"
	}
	return string(a)
}

func (a Algorithm) RequiresTimeQuantum() bool {
	return a == RoundRobin
}

func (a Algorithm) RequiresPriority() bool {
	return a == Priority
}

type Options struct {
	// TimeQuantum is only read by round robin.
	TimeQuantum float64
}

// ValidTimeQuantum reports whether q can drive round robin.
func ValidTimeQuantum(q float64) bool {
	return q > 0 && !math.IsInf(q, 1)
}

// Schedule dispatches to the algorithm's implementation.
func Schedule(algorithm Algorithm, processes []core.ProcessSpec, opts Options) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case Priority:
		return SchedulePriority(processes), nil
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.TimeQuantum)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
}
