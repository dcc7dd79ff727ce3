package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// ShortestJobFirst is non-preemptive: at every decision point the arrived
// process with the smallest burst runs to completion. Ties go to the earlier
// arrival, then to input order.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Schedule(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, byBurst)
}

// scheduleNonPreemptive repeatedly picks the minimum of the ready set under
// less and runs it to completion.
func scheduleNonPreemptive(processes []core.Process, less lessFunc) core.Timeline {
	procs := core.NewSimProcesses(processes)
	incoming := newArrivals(procs)
	ready := newReadyQueue(less)
	push := func(p *core.SimProcess) { heap.Push(ready, p) }

	var timeline core.Timeline
	currentTime, completed := 0, 0
	for completed < len(procs) {
		incoming.admit(currentTime, push)
		if ready.Len() == 0 {
			if !incoming.pending() {
				break
			}
			timeline, currentTime = incoming.idleUntilNextArrival(timeline, currentTime)
			continue
		}

		p := heap.Pop(ready).(*core.SimProcess)
		burst := p.Remaining
		timeline = timeline.Append(p.ID, currentTime, currentTime+burst)
		currentTime += burst
		p.Run(burst)
		completed++
	}
	return timeline
}
