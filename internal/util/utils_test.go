package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-simulator/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnaroundTime: 5},
		{WaitingTime: 4, ResponseTime: 4, TurnaroundTime: 7},
		{WaitingTime: 6, ResponseTime: 2, TurnaroundTime: 14},
	}

	waiting, response, turnaround := CalculateAverage(details)

	assert.InDelta(t, 10.0/3, waiting, 1e-12)
	assert.InDelta(t, 2.0, response, 1e-12)
	assert.InDelta(t, 26.0/3, turnaround, 1e-12)
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestThroughput(t *testing.T) {
	assert.Equal(t, 1.0, Throughput(1, 1))
	assert.Equal(t, 0.25, Throughput(2, 8))
	assert.Zero(t, Throughput(3, 0))
	assert.Zero(t, Throughput(0, 0))
}
