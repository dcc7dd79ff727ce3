package responses

import (
	"cpu-scheduler/internal/core"
)

type TimelineBlock struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Idle      bool   `json:"idle"`
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       *int   `json:"priority,omitempty"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	Timeline              []TimelineBlock   `json:"timeline"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

func NewScheduleResponse(runID, algorithm string, timeline core.Timeline, results []core.Result, aggregates core.Aggregates) ScheduleResponse {
	blocks := make([]TimelineBlock, len(timeline))
	for i, b := range timeline {
		blocks[i] = TimelineBlock{
			ProcessId: b.ProcessID,
			Start:     b.Start,
			End:       b.End,
			Idle:      b.Idle(),
		}
	}

	details := make([]ProcessResponse, len(results))
	for i, r := range results {
		details[i] = ProcessResponse{
			ProcessId:      r.ID,
			ArrivalTime:    r.Arrival,
			BurstTime:      r.Burst,
			CompletionTime: r.Completion,
			TurnAroundTime: r.Turnaround,
			WaitingTime:    r.Waiting,
			ResponseTime:   r.Response,
		}
		if r.HasPriority() {
			priority := r.Priority
			details[i].Priority = &priority
		}
	}

	return ScheduleResponse{
		RunId:                 runID,
		Algorithm:             algorithm,
		Timeline:              blocks,
		TotalTime:             aggregates.Makespan,
		IdleTime:              aggregates.IdleTime,
		AverageWaitingTime:    aggregates.AvgWaiting,
		AverageResponseTime:   aggregates.AvgResponse,
		AverageTurnAroundTime: aggregates.AvgTurnaround,
		CpuUtilization:        aggregates.CPUUtilization,
		CpuThroughput:         aggregates.Throughput,
		Details:               details,
	}
}
