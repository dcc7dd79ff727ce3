package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

type processSpan struct {
	firstStart int
	completion int
}

// ComputeMetrics derives per-process results, in input order, and the run
// aggregates from a timeline produced by one of the schedulers. It panics if
// a process never appears in the timeline.
func ComputeMetrics(processes []core.Process, timeline core.Timeline) ([]core.Result, core.Aggregates) {
	spans := make(map[string]*processSpan, len(processes))
	for _, block := range timeline {
		if block.Idle() {
			continue
		}
		span, ok := spans[block.ProcessID]
		if !ok {
			spans[block.ProcessID] = &processSpan{firstStart: block.Start, completion: block.End}
			continue
		}
		if block.End > span.completion {
			span.completion = block.End
		}
	}

	results := make([]core.Result, 0, len(processes))
	var totalBurst, makespan int
	for _, p := range processes {
		span, ok := spans[p.ID]
		if !ok {
			panic(fmt.Sprintf("schedulers: process %q was never scheduled", p.ID))
		}
		turnaround := span.completion - p.Arrival
		results = append(results, core.Result{
			ID:         p.ID,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Priority:   p.Priority,
			Completion: span.completion,
			Turnaround: turnaround,
			Waiting:    turnaround - p.Burst,
			Response:   span.firstStart - p.Arrival,
		})
		totalBurst += p.Burst
		makespan = max(makespan, span.completion)
	}

	return results, generateAggregates(results, totalBurst, makespan, timeline.IdleTime())
}

func generateAggregates(results []core.Result, totalBurst, makespan, idleTime int) core.Aggregates {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(results)

	aggregates := core.Aggregates{
		AvgTurnaround: averageTurnAroundTime,
		AvgWaiting:    averageWaitingTime,
		AvgResponse:   averageResponseTime,
		Makespan:      makespan,
		IdleTime:      idleTime,
	}
	if makespan > 0 {
		aggregates.CPUUtilization = float64(totalBurst) / float64(makespan) * 100
		aggregates.Throughput = float64(len(results)) / float64(makespan)
	}
	return aggregates
}
