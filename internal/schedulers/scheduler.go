package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"

	"go.uber.org/zap"
)

type Algorithm string

const (
	FCFS               Algorithm = "FCFS"
	SJF                Algorithm = "SJF"
	Priority           Algorithm = "Priority"
	PriorityPreemptive Algorithm = "PriorityPreemptive"
	RoundRobin         Algorithm = "RoundRobin"
	MLFQ               Algorithm = "MLFQ"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
)

// Scheduler turns a process set into a timeline. Implementations must not
// modify the slice they are given.
type Scheduler interface {
	Schedule(processes []core.Process) core.Timeline
}

// Options carries the tunables of the quantum based algorithms.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

func DefaultOptions() Options {
	return Options{
		TimeQuantum:       2,
		LevelsTimeQuantum: []int{5, 8}, // two round robin levels, then fcfs
	}
}

var aliases = map[string]Algorithm{
	"fcfs":                    FCFS,
	"firstcomefirstserve":     FCFS,
	"firstcomefirstserved":    FCFS,
	"sjf":                     SJF,
	"shortestjobfirst":        SJF,
	"priority":                Priority,
	"prioritypreemptive":      PriorityPreemptive,
	"rr":                      RoundRobin,
	"roundrobin":              RoundRobin,
	"mlfq":                    MLFQ,
	"multilevelfeedbackqueue": MLFQ,
}

// ParseAlgorithm resolves an algorithm name. Matching ignores case, dashes,
// underscores and spaces, so "priority-preemptive" and "PriorityPreemptive"
// are the same algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	if algorithm, ok := aliases[key]; ok {
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func GetAvailableAlgorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, Priority, PriorityPreemptive, RoundRobin, MLFQ}
}

func NewScheduler(algorithm Algorithm, opts Options) (Scheduler, error) {
	switch algorithm {
	case FCFS:
		return FirstComeFirstServe{}, nil
	case SJF:
		return ShortestJobFirst{}, nil
	case Priority:
		return NonPreemptivePriority{}, nil
	case PriorityPreemptive:
		return PreemptivePriority{}, nil
	case RoundRobin:
		if opts.TimeQuantum <= 0 {
			return nil, fmt.Errorf("%w: round robin quantum %d", ErrInvalidQuantum, opts.TimeQuantum)
		}
		return NewRoundRobinScheduler(opts.TimeQuantum), nil
	case MLFQ:
		for _, q := range opts.LevelsTimeQuantum {
			if q <= 0 {
				return nil, fmt.Errorf("%w: mlfq levels %v", ErrInvalidQuantum, opts.LevelsTimeQuantum)
			}
		}
		return NewMultilevelFeedbackQueueScheduler(opts.LevelsTimeQuantum), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Simulate runs algorithm with the default options.
func Simulate(processes []core.Process, algorithm Algorithm) core.Timeline {
	return SimulateWithOptions(processes, algorithm, DefaultOptions())
}

// SimulateWithOptions panics when the algorithm or options are invalid;
// callers are expected to have resolved them with ParseAlgorithm and
// NewScheduler beforehand.
func SimulateWithOptions(processes []core.Process, algorithm Algorithm, opts Options) core.Timeline {
	scheduler, err := NewScheduler(algorithm, opts)
	if err != nil {
		panic(err)
	}
	zap.L().Debug("running scheduler",
		zap.String("algorithm", string(algorithm)),
		zap.Int("processes", len(processes)))
	return scheduler.Schedule(processes)
}
