package core

import "math"

// DefaultPriority is assigned to processes whose priority was not supplied.
// Lower values run first, so the sentinel always loses a priority comparison.
const DefaultPriority = math.MaxInt32

// Process is an input row. It is never modified by a simulation.
type Process struct {
	ID       string
	Arrival  int
	Burst    int
	Priority int
}

// HasPriority reports whether the process carries a caller supplied priority.
func (p Process) HasPriority() bool {
	return p.Priority != DefaultPriority
}

// SimProcess is the working copy of a Process used by a single simulation run.
type SimProcess struct {
	Process
	Index     int // position in the caller's input, last tie-breaker
	Remaining int
	Completed bool
}

// NewSimProcesses copies processes into fresh working state.
func NewSimProcesses(processes []Process) []*SimProcess {
	sim := make([]*SimProcess, len(processes))
	for i, p := range processes {
		sim[i] = &SimProcess{
			Process:   p,
			Index:     i,
			Remaining: p.Burst,
		}
	}
	return sim
}

// Run grants the process d units of service and returns true when it completes.
func (p *SimProcess) Run(d int) bool {
	p.Remaining -= d
	if p.Remaining <= 0 {
		p.Remaining = 0
		p.Completed = true
	}
	return p.Completed
}
