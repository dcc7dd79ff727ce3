package requests

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tooMany := make([]Job, DefaultMaxProcesses+1)
	for i := range tooMany {
		tooMany[i] = Job{BurstTime: 1}
	}

	tests := []struct {
		name    string
		jobs    []Job
		wantErr error
	}{
		{"valid", []Job{{ArrivalTime: 0, BurstTime: 1}, {ProcessId: "B", ArrivalTime: 3, BurstTime: 2}}, nil},
		{"empty", nil, ErrNoProcesses},
		{"too many", tooMany, ErrCapacityExceeded},
		{"negative arrival", []Job{{ArrivalTime: -1, BurstTime: 1}}, ErrInvalidRow},
		{"zero burst", []Job{{ArrivalTime: 0, BurstTime: 0}}, ErrInvalidRow},
		{"negative priority", []Job{{BurstTime: 1, Priority: intPtr(-3)}}, nil},
		{"priority at unset sentinel", []Job{{BurstTime: 1, Priority: intPtr(core.DefaultPriority)}}, ErrInvalidRow},
		{"priority above unset sentinel", []Job{{BurstTime: 1}, {BurstTime: 1, Priority: intPtr(math.MaxInt)}}, ErrInvalidRow},
		{"reserved id", []Job{{ProcessId: "idle", BurstTime: 1}}, ErrInvalidRow},
		{"duplicate id", []Job{{ProcessId: "A", BurstTime: 1}, {ProcessId: "A", BurstTime: 2}}, ErrInvalidRow},
		// the second row is labelled P2 by position
		{"duplicate generated id", []Job{{ProcessId: "P2", BurstTime: 1}, {BurstTime: 2}}, ErrInvalidRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ScheduleRequests{Jobs: tt.jobs}.Validate(DefaultMaxProcesses)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateReportsRow(t *testing.T) {
	err := ScheduleRequests{Jobs: []Job{{BurstTime: 1}, {BurstTime: 1}, {BurstTime: -4}}}.Validate(DefaultMaxProcesses)
	require.ErrorIs(t, err, ErrInvalidRow)
	assert.Contains(t, err.Error(), "row 3")
}

func TestProcesses(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ArrivalTime: 0, BurstTime: 5, Priority: intPtr(2)},
		{ProcessId: " editor ", ArrivalTime: 1, BurstTime: 3},
		{ArrivalTime: 4, BurstTime: 1, Priority: intPtr(0)},
	}}

	assert.Equal(t, []core.Process{
		{ID: "P1", Arrival: 0, Burst: 5, Priority: 2},
		{ID: "editor", Arrival: 1, Burst: 3, Priority: core.DefaultPriority},
		{ID: "P3", Arrival: 4, Burst: 1, Priority: 0},
	}, request.Processes())
}
