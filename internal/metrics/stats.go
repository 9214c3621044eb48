// Package metrics accumulates training statistics for periodic logging.
package metrics

import "time"

// Window accumulates loss and timing stats across training iterations.
type Window struct {
	iterations int
	compute    time.Duration
	sumLoss    float64
	minLoss    float64
	lastLoss   float64
}

// Record adds one iteration's measurement to the window.
func (w *Window) Record(computeTime time.Duration, loss float64) {
	if w.iterations == 0 || loss < w.minLoss {
		w.minLoss = loss
	}
	w.iterations++
	w.compute += computeTime
	w.sumLoss += loss
	w.lastLoss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		LastLoss: w.lastLoss,
		MinLoss:  w.minLoss,
	}
	if w.compute > 0 {
		snap.IterationsPerSec = float64(w.iterations) / w.compute.Seconds()
	}
	if w.iterations > 0 {
		snap.AvgLoss = w.sumLoss / float64(w.iterations)
	}

	w.iterations = 0
	w.compute = 0
	w.sumLoss = 0
	w.minLoss = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	IterationsPerSec float64
	AvgLoss          float64
	MinLoss          float64
	LastLoss         float64
}
