package schedulers

import (
	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
	"cpu-simulator/internal/util"
)

func generateResponse(algorithm Algorithm, processes []*core.Process, cpu *core.Cpu) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		processDetails = append(processDetails, generateProcessDetails(process, algorithm.RequiresPriority()))
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)
	metric := cpu.Metric()

	return responses.ScheduleResponse{
		Algorithm:         algorithm.DisplayName(),
		Schedule:          processDetails,
		AvgWaitingTime:    averageWaitingTime,
		AvgTurnaroundTime: averageTurnAroundTime,
		AvgResponseTime:   averageResponseTime,
		Throughput:        util.Throughput(len(processDetails), metric.TotalTime),
		TotalTime:         metric.TotalTime,
		IdleTime:          metric.IdleTime,
		CpuUtilization:    metric.Utilization(),
	}
}

func generateProcessDetails(process *core.Process, withPriority bool) responses.ProcessResponse {
	first, _ := process.FirstSlice()
	last, _ := process.LastSlice()

	completionTime := last.EndTime
	turnAroundTime := completionTime - process.Spec.ArrivalTime

	details := responses.ProcessResponse{
		ID:             process.Spec.ID,
		ArrivalTime:    process.Spec.ArrivalTime,
		BurstTime:      process.Spec.BurstTime,
		StartTime:      first.StartTime,
		EndTime:        last.EndTime,
		CompletionTime: completionTime,
		TurnaroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - process.Spec.BurstTime,
		ResponseTime:   first.StartTime - process.Spec.ArrivalTime,
	}
	if withPriority {
		details.Priority = process.Spec.Priority
	}
	return details
}
