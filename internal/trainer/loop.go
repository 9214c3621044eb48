// Package trainer runs full-batch gradient descent training loops.
package trainer

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dendrite-ml/dendrite/internal/matrix"
	"github.com/dendrite-ml/dendrite/internal/metrics"
	"github.com/dendrite-ml/dendrite/internal/nn"
	"github.com/dendrite-ml/dendrite/internal/optim"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Iterations   int
	LearningRate float64
	Momentum     float64
	LogEvery     int
}

// Report summarizes a completed training run.
type Report struct {
	Iterations  int
	InitialLoss float64
	FinalLoss   float64
}

// Run trains the network on the given batch.
//
// Every iteration computes gradients over the whole batch and applies one
// SGD step. Progress is logged every LogEvery iterations. The context is
// checked each iteration, so a cancelled run stops promptly and returns
// the context's error.
func Run(ctx context.Context, net *nn.Network, input, target *matrix.Matrix, cfg RunConfig) (*Report, error) {
	if net == nil {
		return nil, errors.New("trainer: network is nil")
	}
	if cfg.Iterations <= 0 {
		return nil, errors.New("trainer: iterations must be > 0")
	}
	if cfg.LearningRate <= 0 {
		return nil, errors.New("trainer: learning rate must be > 0")
	}
	if cfg.Momentum < 0 || cfg.Momentum >= 1 {
		return nil, errors.New("trainer: momentum must be in [0, 1)")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 50
	}

	sgd := optim.NewSGD(optim.SGDConfig{
		LR:       cfg.LearningRate,
		Momentum: cfg.Momentum,
	})

	report := &Report{
		InitialLoss: nn.MSE(net.Predict(input), target),
	}

	var window metrics.Window
	for iter := 1; iter <= cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		grads := net.Gradients(input, target)
		sgd.Step(net.Weights(), grads)
		loss := nn.MSE(net.Predict(input), target)
		window.Record(time.Since(start), loss)

		report.Iterations = iter
		report.FinalLoss = loss

		if iter%cfg.LogEvery == 0 {
			snap := window.Snapshot()
			log.Printf("iter=%d iters_per_sec=%.1f loss=%.6f avg_loss=%.6f",
				iter,
				snap.IterationsPerSec,
				snap.LastLoss,
				snap.AvgLoss,
			)
		}
	}

	return report, nil
}
