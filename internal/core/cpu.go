package core

import "math"

type CpuMetric struct {
	TotalTime       float64
	UtilizationTime float64
	IdleTime        float64
}

// Utilization is the busy share of the total time, 0 when no time has passed.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime <= 0 {
		return 0
	}
	return m.UtilizationTime / m.TotalTime
}

// Cpu is a single simulated core driven by a virtual clock starting at 0.
// Dispatches are appended back to back, so the timeline never overlaps.
type Cpu struct {
	clock    float64
	timeline []ExecutionSlice
	metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]ExecutionSlice, 0)}
}

// Now returns the current simulation time.
func (c *Cpu) Now() float64 {
	return c.clock
}

// IdleUntil advances the clock to t, accounting the gap as idle time.
// It is a no-op when t is not in the future.
func (c *Cpu) IdleUntil(t float64) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
	c.metric.TotalTime = c.clock
}

// Execute runs the process for at most quantum time units starting at the
// current clock. A non-positive or infinite quantum runs it to completion.
func (c *Cpu) Execute(process *Process, quantum float64) ExecutionSlice {
	exec := process.Remaining
	if quantum > 0 && !math.IsInf(quantum, 1) && quantum < exec {
		exec = quantum
	}

	slice := ExecutionSlice{
		ID:        process.Spec.ID,
		StartTime: c.clock,
		EndTime:   c.clock + exec,
	}
	c.clock = slice.EndTime
	c.metric.UtilizationTime += exec
	c.metric.TotalTime = c.clock

	process.Remaining -= exec
	if process.Done() {
		process.Remaining = 0
	}
	process.record(slice)
	c.timeline = append(c.timeline, slice)
	return slice
}

// Timeline returns a copy of every dispatch in chronological order.
func (c *Cpu) Timeline() []ExecutionSlice {
	timeline := make([]ExecutionSlice, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
