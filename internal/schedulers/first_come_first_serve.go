package schedulers

import (
	"sort"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

func ScheduleFirstComeFirstServe(specs []core.ProcessSpec) responses.ScheduleResponse {
	processes := sortByArrival(core.NewProcesses(specs))

	cpu := core.NewCpu()
	for _, process := range processes {
		// cpu stays idle until the process arrives
		cpu.IdleUntil(process.Spec.ArrivalTime)
		cpu.Execute(process, 0)
	}

	return generateResponse(FirstComeFirstServe, processes, cpu)
}

// sortByArrival returns the processes ordered by arrival time. Ties keep input order.
func sortByArrival(processes []*core.Process) []*core.Process {
	sorted := make([]*core.Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Spec.ArrivalTime < sorted[j].Spec.ArrivalTime
	})
	return sorted
}
