// Copyright 2026 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// Matrix is a dense 2-D float64 matrix in row-major order.
type Matrix = matrix.Matrix

// New creates a zero-valued matrix with the given dimensions.
//
// Returns an error if either dimension is not positive.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// Zeros creates a zero-valued matrix with the given dimensions.
//
// Panics if the dimensions are invalid.
//
// Example:
//
//	m := matrix.Zeros(2, 3)
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// FromSlice creates a matrix from a row-major flat slice.
//
// Example:
//
//	m, err := matrix.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	return matrix.FromSlice(data, rows, cols)
}

// Uniform creates a matrix with entries drawn uniformly from [-bound, bound].
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	m := matrix.Uniform(rng, 3, 2, 0.5)
func Uniform(rng *rand.Rand, rows, cols int, bound float64) *Matrix {
	return matrix.Uniform(rng, rows, cols, bound)
}
