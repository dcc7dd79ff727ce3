package core

// Result holds the metrics derived for one process.
type Result struct {
	ID         string
	Arrival    int
	Burst      int
	Priority   int
	Completion int
	Turnaround int
	Waiting    int
	Response   int
}

// HasPriority reports whether the process carried a caller supplied priority.
func (r Result) HasPriority() bool {
	return r.Priority != DefaultPriority
}

// Aggregates summarises a whole run.
type Aggregates struct {
	AvgTurnaround  float64
	AvgWaiting     float64
	AvgResponse    float64
	Makespan       int
	IdleTime       int
	CPUUtilization float64 // percent
	Throughput     float64 // processes per time unit
}
