package schedulers

import (
	"container/heap"
	"sort"

	"cpu-scheduler/internal/core"
)

// lessFunc orders two ready processes; it must be a strict total order so
// selections are deterministic.
type lessFunc func(a, b *core.SimProcess) bool

func byArrival(a, b *core.SimProcess) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Index < b.Index
}

func byBurst(a, b *core.SimProcess) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	return byArrival(a, b)
}

func byPriority(a, b *core.SimProcess) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return byArrival(a, b)
}

// readyQueue is a min-heap of eligible processes.
type readyQueue struct {
	items []*core.SimProcess
	less  lessFunc
}

func newReadyQueue(less lessFunc) *readyQueue {
	rq := &readyQueue{less: less}
	heap.Init(rq)
	return rq
}

func (rq readyQueue) Len() int { return len(rq.items) }

func (rq readyQueue) Less(i, j int) bool { return rq.less(rq.items[i], rq.items[j]) }

func (rq readyQueue) Swap(i, j int) { rq.items[i], rq.items[j] = rq.items[j], rq.items[i] }

func (rq *readyQueue) Push(x any) {
	rq.items = append(rq.items, x.(*core.SimProcess))
}

func (rq *readyQueue) Pop() any {
	old := rq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	rq.items = old[:n-1]
	return item
}

func (rq *readyQueue) peek() *core.SimProcess {
	return rq.items[0]
}

// arrivals releases processes in arrival order as simulated time advances.
type arrivals struct {
	order []*core.SimProcess
	next  int
}

func newArrivals(processes []*core.SimProcess) *arrivals {
	order := make([]*core.SimProcess, len(processes))
	copy(order, processes)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Arrival < order[j].Arrival
	})
	return &arrivals{order: order}
}

func (a *arrivals) pending() bool {
	return a.next < len(a.order)
}

func (a *arrivals) nextTime() int {
	return a.order[a.next].Arrival
}

// admit hands every process that has arrived by now to enqueue.
func (a *arrivals) admit(now int, enqueue func(*core.SimProcess)) {
	for a.pending() && a.order[a.next].Arrival <= now {
		enqueue(a.order[a.next])
		a.next++
	}
}

// idleUntilNextArrival closes the gap before the next arrival with one idle block.
func (a *arrivals) idleUntilNextArrival(timeline core.Timeline, now int) (core.Timeline, int) {
	next := a.nextTime()
	return timeline.Append(core.IdleID, now, next), next
}
