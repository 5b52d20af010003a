package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(10*time.Millisecond, 1.2)
	w.Record(30*time.Millisecond, 0.8)
	snap := w.Snapshot()

	assert.Equal(t, 2, snap.Steps)
	assert.InDelta(t, 50, snap.StepsPerSec, 1e-9)
	assert.InDelta(t, 20, snap.AvgComputeMS, 1e-9)
	assert.InDelta(t, 1.0, snap.AvgLoss, 1e-12)
	assert.Equal(t, 0.8, snap.LastLoss)

	assert.Zero(t, w.steps, "window was not reset")
	assert.Empty(t, w.losses)
}

func TestEmptySnapshot(t *testing.T) {
	var w Window
	snap := w.Snapshot()
	assert.Zero(t, snap.StepsPerSec)
	assert.Zero(t, snap.AvgLoss)
}

func TestSquaredError(t *testing.T) {
	assert.InDelta(t, 0.5*0.5*4, SquaredError([]float64{1, 0, 0, 0}, []float64{0.5, 0.5, 0.5, 0.5}), 1e-12)
	assert.Zero(t, SquaredError([]float64{0, 1}, []float64{0, 1}))
}
