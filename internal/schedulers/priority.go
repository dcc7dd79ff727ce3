package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// NonPreemptivePriority runs the arrived process with the lowest priority
// number to completion. Ties go to the earlier arrival, then to input order.
type NonPreemptivePriority struct{}

func (NonPreemptivePriority) Schedule(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, byPriority)
}

// PreemptivePriority re-evaluates the ready set whenever a process arrives;
// a newly arrived process with a strictly better priority takes the CPU and
// the interrupted one resumes later in a separate block.
//
// Between two arrivals the ready set can only shrink, and priorities are
// static, so the loop advances straight to the next arrival or completion.
// The timeline is the same one a unit step simulation would produce.
type PreemptivePriority struct{}

func (PreemptivePriority) Schedule(processes []core.Process) core.Timeline {
	procs := core.NewSimProcesses(processes)
	incoming := newArrivals(procs)
	ready := newReadyQueue(byPriority)
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

		p := ready.peek()
		slice := p.Remaining
		if incoming.pending() {
			if gap := incoming.nextTime() - currentTime; gap < slice {
				slice = gap
			}
		}
		// a continuing run of the same process extends its open block
		timeline = timeline.Append(p.ID, currentTime, currentTime+slice)
		currentTime += slice
		if p.Run(slice) {
			heap.Pop(ready)
			completed++
		}
	}
	return timeline
}
