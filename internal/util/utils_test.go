package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	results := []core.Result{
		{ID: "P1", Turnaround: 5, Waiting: 0, Response: 0},
		{ID: "P2", Turnaround: 9, Waiting: 5, Response: 5},
		{ID: "P3", Turnaround: 12, Waiting: 9, Response: 9},
	}

	waiting, response, turnaround := CalculateAverage(results)
	assert.InDelta(t, 14.0/3, waiting, 1e-9)
	assert.InDelta(t, 14.0/3, response, 1e-9)
	assert.InDelta(t, 26.0/3, turnaround, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)
	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}
