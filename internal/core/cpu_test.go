package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpu_ExecuteToCompletion(t *testing.T) {
	cpu := NewCpu()
	processes := NewProcesses([]ProcessSpec{{ID: "A", BurstTime: 4}})

	slice := cpu.Execute(processes[0], 0)

	assert.Equal(t, ExecutionSlice{ID: "A", StartTime: 0, EndTime: 4}, slice)
	assert.True(t, processes[0].Done())
	assert.Equal(t, 4.0, cpu.Now())
	assert.Equal(t, CpuMetric{TotalTime: 4, UtilizationTime: 4}, cpu.Metric())
}

func TestCpu_ExecuteQuantum(t *testing.T) {
	cpu := NewCpu()
	process := NewProcesses([]ProcessSpec{{ID: "A", BurstTime: 5}})[0]

	cpu.Execute(process, 2)
	assert.Equal(t, 3.0, process.Remaining)
	cpu.Execute(process, 2)
	cpu.Execute(process, 2)

	assert.True(t, process.Done())
	assert.Equal(t, 5.0, process.Spec.BurstTime)
	assert.Equal(t, 3, process.Dispatches())
	first, ok := process.FirstSlice()
	require.True(t, ok)
	assert.Equal(t, ExecutionSlice{ID: "A", StartTime: 0, EndTime: 2}, first)
	last, ok := process.LastSlice()
	require.True(t, ok)
	assert.Equal(t, ExecutionSlice{ID: "A", StartTime: 4, EndTime: 5}, last)
	assert.Len(t, cpu.Timeline(), 3)
}

func TestProcess_DoneToleranceScalesWithBurst(t *testing.T) {
	processes := NewProcesses([]ProcessSpec{{ID: "big", BurstTime: 1e5}, {ID: "small", BurstTime: 0.5}})

	// residue of the size left by 1e7 subtractions of 0.01 from 1e5
	processes[0].Remaining = 2e-8
	assert.True(t, processes[0].Done())
	processes[0].Remaining = 0.01
	assert.False(t, processes[0].Done())

	processes[1].Remaining = 5e-10
	assert.True(t, processes[1].Done())
	processes[1].Remaining = 2e-9
	assert.False(t, processes[1].Done())
}

func TestCpu_InfiniteQuantumRunsToCompletion(t *testing.T) {
	cpu := NewCpu()
	process := NewProcesses([]ProcessSpec{{ID: "A", BurstTime: 3}})[0]

	cpu.Execute(process, math.Inf(1))

	assert.True(t, process.Done())
}

func TestCpu_IdleUntil(t *testing.T) {
	cpu := NewCpu()
	process := NewProcesses([]ProcessSpec{{ID: "A", ArrivalTime: 3, BurstTime: 1}})[0]

	cpu.IdleUntil(3)
	cpu.IdleUntil(1) // past, ignored
	cpu.Execute(process, 0)

	metric := cpu.Metric()
	assert.Equal(t, 3.0, metric.IdleTime)
	assert.Equal(t, 4.0, metric.TotalTime)
	assert.InDelta(t, 0.25, metric.Utilization(), 1e-12)
}

func TestCpuMetric_UtilizationOfEmptyRun(t *testing.T) {
	assert.Equal(t, 0.0, CpuMetric{}.Utilization())
}

func TestCpu_TimelineIsACopy(t *testing.T) {
	cpu := NewCpu()
	process := NewProcesses([]ProcessSpec{{ID: "A", BurstTime: 1}})[0]
	cpu.Execute(process, 0)

	timeline := cpu.Timeline()
	timeline[0].ID = "changed"

	assert.Equal(t, "A", cpu.Timeline()[0].ID)
}

func TestNewProcesses_CopiesSpecs(t *testing.T) {
	priority := 2
	specs := []ProcessSpec{{ID: "A", BurstTime: 2, Priority: &priority}, {ID: "B", BurstTime: 1}}

	processes := NewProcesses(specs)
	*processes[0].Spec.Priority = 9
	processes[0].Remaining = 0

	assert.Equal(t, 2, priority)
	assert.Equal(t, 2.0, specs[0].BurstTime)
	assert.Equal(t, 1, processes[1].Order)
	assert.Equal(t, math.MaxInt, processes[1].Spec.PriorityRank())

	_, ok := processes[1].FirstSlice()
	assert.False(t, ok)
}

func TestProcessQueue(t *testing.T) {
	queue := NewProcessQueue()
	processes := NewProcesses([]ProcessSpec{{ID: "A"}, {ID: "B"}})

	_, ok := queue.RemoveFromTop()
	assert.False(t, ok)

	queue.AddToEnd(processes[0])
	queue.AddToEnd(processes[1])
	queue.AddToEnd(processes[0])
	assert.Equal(t, 3, queue.Len())

	for _, want := range []string{"A", "B", "A"} {
		got, ok := queue.RemoveFromTop()
		require.True(t, ok)
		assert.Equal(t, want, got.Spec.ID)
	}
	assert.Equal(t, 0, queue.Len())
}
