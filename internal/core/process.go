package core

import "math"

// completionEpsilon absorbs floating point residue left after fractional
// time slices so a process never gets a zero-length trailing dispatch. It is
// relative to the burst, since the residue grows with its magnitude.
const completionEpsilon = 1e-9

// ProcessSpec is a process as submitted by the caller. It is never mutated.
type ProcessSpec struct {
	ID          string
	ArrivalTime float64
	BurstTime   float64
	Priority    *int // lower value runs first; nil ranks after every explicit priority
}

// PriorityRank returns the priority used for ordering.
func (s ProcessSpec) PriorityRank() int {
	if s.Priority == nil {
		return math.MaxInt
	}
	return *s.Priority
}

// ExecutionSlice is one contiguous run of a process on the CPU.
type ExecutionSlice struct {
	ID        string  `json:"id" yaml:"id"`
	StartTime float64 `json:"startTime" yaml:"startTime"`
	EndTime   float64 `json:"endTime" yaml:"endTime"`
}

func (s ExecutionSlice) Duration() float64 {
	return s.EndTime - s.StartTime
}

// Process is the working state of one process during a simulation: the
// untouched spec plus the burst still owed to it. Only the first and the
// latest dispatch are kept; the Cpu timeline holds the full history.
type Process struct {
	Spec      ProcessSpec
	Order     int // position in the caller's input, used as the final tie-break
	Remaining float64

	first      ExecutionSlice
	last       ExecutionSlice
	dispatches int
}

// NewProcesses copies specs into fresh working states.
func NewProcesses(specs []ProcessSpec) []*Process {
	processes := make([]*Process, 0, len(specs))
	for i, spec := range specs {
		if spec.Priority != nil {
			priority := *spec.Priority
			spec.Priority = &priority
		}
		processes = append(processes, &Process{
			Spec:      spec,
			Order:     i,
			Remaining: spec.BurstTime,
		})
	}
	return processes
}

func (p *Process) Done() bool {
	return p.Remaining <= completionEpsilon*math.Max(1, p.Spec.BurstTime)
}

// Dispatches is the number of slices the process has been given.
func (p *Process) Dispatches() int {
	return p.dispatches
}

func (p *Process) record(slice ExecutionSlice) {
	if p.dispatches == 0 {
		p.first = slice
	}
	p.last = slice
	p.dispatches++
}

// FirstSlice returns the first dispatch of the process. ok is false when it never ran.
func (p *Process) FirstSlice() (ExecutionSlice, bool) {
	return p.first, p.dispatches > 0
}

// LastSlice returns the latest dispatch of the process.
func (p *Process) LastSlice() (ExecutionSlice, bool) {
	return p.last, p.dispatches > 0
}
