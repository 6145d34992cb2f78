package schedulers

import (
	"fmt"
	"math"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

// ratioTolerance keeps an exact multiple such as 1e5/0.01 from rounding up
// into one more slice than the simulation produces.
const ratioTolerance = 1e-9

func ScheduleRoundRobin(specs []core.ProcessSpec, timeQuantum float64) (responses.ScheduleResponse, error) {
	if !ValidTimeQuantum(timeQuantum) {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %v", ErrInvalidTimeQuantum, timeQuantum)
	}

	processes := core.NewProcesses(specs)
	arrivals := sortByArrival(processes)
	readyQueue := core.NewProcessQueue()
	cpu := core.NewCpu()

	next := 0
	admitArrived := func() {
		for next < len(arrivals) && arrivals[next].Spec.ArrivalTime <= cpu.Now() {
			readyQueue.AddToEnd(arrivals[next])
			next++
		}
	}

	for next < len(arrivals) || readyQueue.Len() > 0 {
		if readyQueue.Len() == 0 {
			cpu.IdleUntil(arrivals[next].Spec.ArrivalTime)
			readyQueue.AddToEnd(arrivals[next])
			next++
		}

		process, _ := readyQueue.RemoveFromTop()
		cpu.Execute(process, timeQuantum)

		// newcomers go ahead of the preempted process
		admitArrived()

		if !process.Done() {
			readyQueue.AddToEnd(process)
		}
	}

	response := generateResponse(RoundRobin, processes, cpu)
	response.Timeline = cpu.Timeline()
	return response, nil
}

// RoundRobinDispatches is the number of slices Round Robin hands out for
// specs, the sum of ceil(burst/quantum). It is a float so huge ratios do not
// overflow; callers compare it against a limit before simulating.
func RoundRobinDispatches(specs []core.ProcessSpec, timeQuantum float64) float64 {
	if !ValidTimeQuantum(timeQuantum) {
		return 0
	}
	total := 0.0
	for _, spec := range specs {
		total += math.Max(1, math.Ceil(spec.BurstTime/timeQuantum*(1-ratioTolerance)))
	}
	return total
}
