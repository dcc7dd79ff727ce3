package schedulers

import "cpu-scheduler/internal/core"

// MultilevelFeedbackQueueScheduler has one round robin level per entry of
// levelsTimeQuantum plus a final fcfs level. Arrivals enter the top level; a
// process that uses its whole slice without finishing drops one level.
// Slices are never interrupted.
type MultilevelFeedbackQueueScheduler struct {
	levelsTimeQuantum []int
}

func NewMultilevelFeedbackQueueScheduler(levelsTimeQuantum []int) *MultilevelFeedbackQueueScheduler {
	quanta := make([]int, len(levelsTimeQuantum))
	copy(quanta, levelsTimeQuantum)
	return &MultilevelFeedbackQueueScheduler{levelsTimeQuantum: quanta}
}

func (s *MultilevelFeedbackQueueScheduler) Schedule(processes []core.Process) core.Timeline {
	procs := core.NewSimProcesses(processes)
	incoming := newArrivals(procs)
	fcfsLevel := len(s.levelsTimeQuantum)
	levels := make([][]*core.SimProcess, fcfsLevel+1)
	enqueueTop := func(p *core.SimProcess) { levels[0] = append(levels[0], p) }

	var timeline core.Timeline
	currentTime, completed := 0, 0
	for completed < len(procs) {
		incoming.admit(currentTime, enqueueTop)
		level := highestNonEmpty(levels)
		if level < 0 {
			if !incoming.pending() {
				break
			}
			timeline, currentTime = incoming.idleUntilNextArrival(timeline, currentTime)
			continue
		}

		p := levels[level][0]
		levels[level] = levels[level][1:]
		slice := p.Remaining
		if level < fcfsLevel {
			slice = min(s.levelsTimeQuantum[level], slice)
		}
		timeline = timeline.Append(p.ID, currentTime, currentTime+slice)
		currentTime += slice
		done := p.Run(slice)

		incoming.admit(currentTime, enqueueTop)
		if done {
			completed++
			continue
		}
		next := min(level+1, fcfsLevel)
		levels[next] = append(levels[next], p)
	}
	return timeline
}

func highestNonEmpty(levels [][]*core.SimProcess) int {
	for i, queue := range levels {
		if len(queue) > 0 {
			return i
		}
	}
	return -1
}
