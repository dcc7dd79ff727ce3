package requests

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

// DefaultMaxProcesses is the row limit applied when no configuration overrides it.
const DefaultMaxProcesses = 20

var (
	ErrNoProcesses      = errors.New("at least one process is required")
	ErrInvalidRow       = errors.New("invalid process row")
	ErrCapacityExceeded = errors.New("too many processes")
)

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    *int   `json:"priority,omitempty"`
}

type ScheduleRequests struct {
	Algorithm string `json:"algorithm,omitempty"`
	Jobs      []Job  `json:"jobs"`
}

// Validate rejects request bodies the scheduling core must never see.
func (r ScheduleRequests) Validate(maxProcesses int) error {
	if len(r.Jobs) == 0 {
		return ErrNoProcesses
	}
	if maxProcesses > 0 && len(r.Jobs) > maxProcesses {
		return fmt.Errorf("%w: got %d, limit is %d", ErrCapacityExceeded, len(r.Jobs), maxProcesses)
	}

	seen := make(map[string]int, len(r.Jobs))
	for i, job := range r.Jobs {
		row := i + 1
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: row %d: arrival time must be >= 0", ErrInvalidRow, row)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: row %d: burst time must be > 0", ErrInvalidRow, row)
		}
		if job.Priority != nil && *job.Priority >= core.DefaultPriority {
			return fmt.Errorf("%w: row %d: priority must be < %d", ErrInvalidRow, row, core.DefaultPriority)
		}
		id := job.id(i)
		if strings.EqualFold(id, core.IdleID) {
			return fmt.Errorf("%w: row %d: process id %q is reserved", ErrInvalidRow, row, id)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: row %d: process id %q already used on row %d", ErrInvalidRow, row, id, prev)
		}
		seen[id] = row
	}
	return nil
}

// Processes converts the jobs into core processes, labelling unnamed rows
// P1, P2, ... by position.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		priority := core.DefaultPriority
		if job.Priority != nil {
			priority = *job.Priority
		}
		processes[i] = core.Process{
			ID:       job.id(i),
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: priority,
		}
	}
	return processes
}

func (j Job) id(index int) string {
	if id := strings.TrimSpace(j.ProcessId); id != "" {
		return id
	}
	return fmt.Sprintf("P%d", index+1)
}
