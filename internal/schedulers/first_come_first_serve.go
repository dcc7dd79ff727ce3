package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// FirstComeFirstServe runs processes in arrival order, each to completion.
// Equal arrivals keep their input order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Schedule(processes []core.Process) core.Timeline {
	// sort jobs by arrival time
	jobs := core.NewSimProcesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Arrival < jobs[j].Arrival
	})

	var timeline core.Timeline
	currentTime := 0
	for _, job := range jobs {
		if currentTime < job.Arrival {
			timeline = timeline.Append(core.IdleID, currentTime, job.Arrival)
			currentTime = job.Arrival
		}
		timeline = timeline.Append(job.ID, currentTime, currentTime+job.Burst)
		currentTime += job.Burst
		job.Run(job.Burst)
	}
	return timeline
}
