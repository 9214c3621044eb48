package optim

import (
	"fmt"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	W = W - lr * grad
//
// Update rule with momentum:
//
//	v = momentum * v + grad
//	W = W - lr * v
//
// Momentum accelerates descent along consistent directions and dampens
// oscillations.
type SGD struct {
	lr         float64
	momentum   float64
	velocities []*matrix.Matrix
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.1)
	Momentum float64 // Momentum factor (default: 0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// A zero LR falls back to the default of 0.1.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.1
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one gradient descent update to the weights in place.
//
// Panics if the weight and gradient slices have different lengths, or if a
// gradient's shape differs from its weight's (the matrix layer enforces the
// latter).
func (s *SGD) Step(weights, grads []*matrix.Matrix) {
	if len(weights) != len(grads) {
		panic(fmt.Sprintf("SGD.Step: %d weights but %d gradients", len(weights), len(grads)))
	}

	if s.momentum == 0 {
		for i, w := range weights {
			updated := w.Sub(grads[i].Scale(s.lr))
			copy(w.Data(), updated.Data())
		}
		return
	}

	// Velocities are allocated lazily on the first step.
	if s.velocities == nil {
		s.velocities = make([]*matrix.Matrix, len(weights))
		for i, w := range weights {
			s.velocities[i] = matrix.Zeros(w.Rows(), w.Cols())
		}
	}
	for i, w := range weights {
		v := s.velocities[i].Scale(s.momentum).Add(grads[i])
		s.velocities[i] = v
		updated := w.Sub(v.Scale(s.lr))
		copy(w.Data(), updated.Data())
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
