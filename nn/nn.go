// Copyright 2026 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/dendrite-ml/dendrite/internal/matrix"
	"github.com/dendrite-ml/dendrite/internal/nn"
)

// Network is a fully connected feedforward network with sigmoid activation
// at every layer and no bias parameters.
type Network = nn.Network

// Checkpoint is a snapshot of a network together with training metadata.
type Checkpoint = nn.Checkpoint

// NewNetwork creates a network from explicit weight matrices.
//
// Adjacent weights must chain: weights[i+1].Cols() == weights[i].Rows().
func NewNetwork(weights ...*matrix.Matrix) (*Network, error) {
	return nn.NewNetwork(weights...)
}

// Random creates a network with Glorot-uniform initialized weights.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	net, err := nn.Random(rng, 2, 8, 1)
func Random(rng *rand.Rand, layerUnits ...int) (*Network, error) {
	return nn.Random(rng, layerUnits...)
}

// Activations

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) element-wise.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix {
	return nn.Sigmoid(m)
}

// SigmoidPrime applies σ'(x) = σ(x)·(1-σ(x)) element-wise.
func SigmoidPrime(m *matrix.Matrix) *matrix.Matrix {
	return nn.SigmoidPrime(m)
}

// Initialization

// GlorotUniform creates a [fanOut, fanIn] weight matrix with entries drawn
// from U(-ε, +ε), ε = sqrt(6) / sqrt(fanIn + fanOut).
func GlorotUniform(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix {
	return nn.GlorotUniform(rng, fanIn, fanOut)
}

// Loss

// MSE computes mean((predictions - targets)²).
func MSE(predictions, targets *matrix.Matrix) float64 {
	return nn.MSE(predictions, targets)
}

// Checkpoints

// LoadCheckpoint reads a checkpoint written by Checkpoint.Save.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	return nn.LoadCheckpoint(path)
}
