package schedulers

import (
	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

func ScheduleShortestJobFirst(specs []core.ProcessSpec) responses.ScheduleResponse {
	cpu := core.NewCpu()
	executed := runNonPreemptive(core.NewProcesses(specs), cpu, shorterJob)
	return generateResponse(ShortestJobFirst, executed, cpu)
}

func shorterJob(a, b *core.Process) bool {
	if a.Spec.BurstTime != b.Spec.BurstTime {
		return a.Spec.BurstTime < b.Spec.BurstTime
	}
	return arrivedEarlier(a, b)
}

// arrivedEarlier is the shared tie-break: earliest arrival, then input order.
func arrivedEarlier(a, b *core.Process) bool {
	if a.Spec.ArrivalTime != b.Spec.ArrivalTime {
		return a.Spec.ArrivalTime < b.Spec.ArrivalTime
	}
	return a.Order < b.Order
}

// runNonPreemptive repeatedly picks the best arrived process according to
// less and runs it to completion. When nothing has arrived the cpu idles
// until the earliest pending arrival. It returns processes in execution order.
func runNonPreemptive(pending []*core.Process, cpu *core.Cpu, less func(a, b *core.Process) bool) []*core.Process {
	executed := make([]*core.Process, 0, len(pending))

	for len(pending) > 0 {
		next := -1
		for i, process := range pending {
			if process.Spec.ArrivalTime > cpu.Now() {
				continue
			}
			if next == -1 || less(process, pending[next]) {
				next = i
			}
		}

		if next == -1 {
			earliest := pending[0]
			for _, process := range pending[1:] {
				if arrivedEarlier(process, earliest) {
					earliest = process
				}
			}
			cpu.IdleUntil(earliest.Spec.ArrivalTime)
			continue
		}

		process := pending[next]
		cpu.Execute(process, 0)
		executed = append(executed, process)
		pending = append(pending[:next], pending[next+1:]...)
	}

	return executed
}
