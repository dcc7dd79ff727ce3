package schedulers

import "cpu-scheduler/internal/core"

// RoundRobinScheduler gives each ready process at most one quantum in FIFO
// order. Processes that arrive while a slice runs are queued ahead of the
// process that was just preempted.
type RoundRobinScheduler struct {
	timeQuantum int
}

func NewRoundRobinScheduler(timeQuantum int) *RoundRobinScheduler {
	return &RoundRobinScheduler{timeQuantum: timeQuantum}
}

func (s *RoundRobinScheduler) Schedule(processes []core.Process) core.Timeline {
	procs := core.NewSimProcesses(processes)
	incoming := newArrivals(procs)
	queue := make([]*core.SimProcess, 0, len(procs))
	enqueue := func(p *core.SimProcess) { queue = append(queue, p) }

	var timeline core.Timeline
	currentTime, completed := 0, 0
	for completed < len(procs) {
		incoming.admit(currentTime, enqueue)
		if len(queue) == 0 {
			if !incoming.pending() {
				break
			}
			timeline, currentTime = incoming.idleUntilNextArrival(timeline, currentTime)
			continue
		}

		p := queue[0]
		queue = queue[1:]
		slice := min(s.timeQuantum, p.Remaining)
		timeline = timeline.Append(p.ID, currentTime, currentTime+slice)
		currentTime += slice
		done := p.Run(slice)

		incoming.admit(currentTime, enqueue)
		if done {
			completed++
			continue
		}
		enqueue(p)
	}
	return timeline
}
