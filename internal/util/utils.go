package util

import "cpu-simulator/internal/responses"

// CalculateAverage returns 0 averages for an empty slice.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnaroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

// Throughput is completed processes per unit of simulated time, 0 for an empty makespan.
func Throughput(processCount int, makespan float64) float64 {
	if makespan <= 0 {
		return 0
	}
	return float64(processCount) / makespan
}
