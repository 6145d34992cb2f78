package responses

import "cpu-simulator/internal/core"

type ProcessResponse struct {
	ID             string  `json:"id" yaml:"id"`
	ArrivalTime    float64 `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime      float64 `json:"burstTime" yaml:"burstTime"`
	Priority       *int    `json:"priority,omitempty" yaml:"priority,omitempty"`
	StartTime      float64 `json:"startTime" yaml:"startTime"`
	EndTime        float64 `json:"endTime" yaml:"endTime"`
	CompletionTime float64 `json:"completionTime" yaml:"completionTime"`
	TurnaroundTime float64 `json:"turnaroundTime" yaml:"turnaroundTime"`
	WaitingTime    float64 `json:"waitingTime" yaml:"waitingTime"`
	ResponseTime   float64 `json:"responseTime" yaml:"responseTime"`
}

type ScheduleResponse struct {
	Algorithm         string                `json:"algorithm" yaml:"algorithm"`
	Schedule          []ProcessResponse     `json:"schedule" yaml:"schedule"`
	Timeline          []core.ExecutionSlice `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	AvgWaitingTime    float64               `json:"avgWaitingTime" yaml:"avgWaitingTime"`
	AvgTurnaroundTime float64               `json:"avgTurnaroundTime" yaml:"avgTurnaroundTime"`
	AvgResponseTime   float64               `json:"avgResponseTime" yaml:"avgResponseTime"`
	Throughput        float64               `json:"throughput" yaml:"throughput"`
	TotalTime         float64               `json:"totalTime" yaml:"totalTime"`
	IdleTime          float64               `json:"idleTime" yaml:"idleTime"`
	CpuUtilization    float64               `json:"cpuUtilization" yaml:"cpuUtilization"`
}

// CompareResponse is one entry of a comparison run, keyed by the requested algorithm.
type CompareResponse struct {
	Algorithm string           `json:"algorithm" yaml:"algorithm"`
	Result    ScheduleResponse `json:"result" yaml:"result"`
}
