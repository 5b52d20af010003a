package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Window accumulates training stats across multiple steps.
type Window struct {
	compute  time.Duration
	steps    int
	losses   []float64
	lastLoss float64
}

// Record adds a new measurement to the window.
func (w *Window) Record(computeTime time.Duration, loss float64) {
	w.compute += computeTime
	w.steps++
	w.losses = append(w.losses, loss)
	w.lastLoss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Steps: w.steps}
	if w.compute > 0 {
		snap.StepsPerSec = float64(w.steps) / w.compute.Seconds()
	}
	if w.steps > 0 {
		snap.AvgComputeMS = (w.compute.Seconds() * 1000) / float64(w.steps)
		snap.AvgLoss = stat.Mean(w.losses, nil)
	}
	snap.LastLoss = w.lastLoss

	w.compute = 0
	w.steps = 0
	w.losses = w.losses[:0]
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Steps        int
	StepsPerSec  float64
	AvgComputeMS float64
	LastLoss     float64
	AvgLoss      float64
}

// SquaredError is the per-sample loss reported by the trainer.
func SquaredError(target, output []float64) float64 {
	sum := 0.0
	for i := range target {
		d := target[i] - output[i]
		sum += d * d
	}
	return sum
}
