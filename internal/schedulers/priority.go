package schedulers

import (
	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

// SchedulePriority runs the most urgent arrived process (lowest priority
// value) to completion. Processes without a priority rank last.
func SchedulePriority(specs []core.ProcessSpec) responses.ScheduleResponse {
	cpu := core.NewCpu()
	executed := runNonPreemptive(core.NewProcesses(specs), cpu, higherPriority)
	return generateResponse(Priority, executed, cpu)
}

func higherPriority(a, b *core.Process) bool {
	if a.Spec.PriorityRank() != b.Spec.PriorityRank() {
		return a.Spec.PriorityRank() < b.Spec.PriorityRank()
	}
	return arrivedEarlier(a, b)
}
