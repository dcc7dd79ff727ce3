package responses

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestNewScheduleResponse(t *testing.T) {
	timeline := core.Timeline{
		{ProcessID: core.IdleID, Start: 0, End: 1},
		{ProcessID: "P1", Start: 1, End: 3},
		{ProcessID: "P2", Start: 3, End: 4},
	}
	results := []core.Result{
		{ID: "P1", Arrival: 1, Burst: 2, Priority: 4, Completion: 3, Turnaround: 2},
		{ID: "P2", Arrival: 1, Burst: 1, Priority: core.DefaultPriority, Completion: 4, Turnaround: 3, Waiting: 2, Response: 2},
	}
	aggregates := core.Aggregates{AvgTurnaround: 2.5, AvgWaiting: 1, AvgResponse: 1, Makespan: 4, IdleTime: 1,
		CPUUtilization: 75, Throughput: 0.5}

	response := NewScheduleResponse("run-1", "SJF", timeline, results, aggregates)

	assert.Equal(t, "run-1", response.RunId)
	assert.Equal(t, "SJF", response.Algorithm)
	require.Len(t, response.Timeline, 3)
	assert.True(t, response.Timeline[0].Idle)
	assert.False(t, response.Timeline[1].Idle)
	assert.Equal(t, 4, response.TotalTime)
	assert.Equal(t, 1, response.IdleTime)
	assert.Equal(t, 75.0, response.CpuUtilization)
	assert.Equal(t, 0.5, response.CpuThroughput)

	require.Len(t, response.Details, 2)
	require.NotNil(t, response.Details[0].Priority)
	assert.Equal(t, 4, *response.Details[0].Priority)
	assert.Nil(t, response.Details[1].Priority)
	assert.Equal(t, 2, response.Details[1].WaitingTime)

	body, err := json.Marshal(response.Details[1])
	require.NoError(t, err)
	assert.NotContains(t, string(body), "priority")
}
