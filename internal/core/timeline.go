package core

// IdleID labels timeline blocks during which no process holds the CPU.
const IdleID = "IDLE"

// TimelineBlock is a half-open interval [Start, End) of CPU allocation.
type TimelineBlock struct {
	ProcessID string
	Start     int
	End       int
}

// Idle reports whether no process held the CPU during the block.
func (b TimelineBlock) Idle() bool {
	return b.ProcessID == IdleID
}

// Duration is End - Start.
func (b TimelineBlock) Duration() int {
	return b.End - b.Start
}

// Timeline is an ordered, gap free sequence of blocks starting at 0.
type Timeline []TimelineBlock

// Makespan is the end of the last block.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// IdleTime sums the durations of the idle blocks.
func (t Timeline) IdleTime() int {
	var idle int
	for _, b := range t {
		if b.Idle() {
			idle += b.Duration()
		}
	}
	return idle
}

// BusyTime is the time some process held the CPU.
func (t Timeline) BusyTime() int {
	return t.Makespan() - t.IdleTime()
}

// Append adds [start, end) for id, extending the last block instead when it
// belongs to the same id and ends at start. Empty intervals are dropped.
func (t Timeline) Append(id string, start, end int) Timeline {
	if end <= start {
		return t
	}
	if n := len(t); n > 0 && t[n-1].ProcessID == id && t[n-1].End == start {
		t[n-1].End = end
		return t
	}
	return append(t, TimelineBlock{ProcessID: id, Start: start, End: end})
}
