package nn

import (
	"math"
	"math/rand"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// GlorotUniform creates a weight matrix with Glorot (Xavier) uniform
// initialization.
//
// Entries are drawn from U(-ε, +ε) with ε = sqrt(6) / sqrt(fanIn + fanOut).
// This keeps the variance of activations roughly constant across layers.
//
// The returned matrix has shape [fanOut, fanIn], matching the denominator
// layout forward pass W · A.
func GlorotUniform(rng *rand.Rand, fanIn, fanOut int) *matrix.Matrix {
	epsilon := math.Sqrt(6) / math.Sqrt(float64(fanIn+fanOut))
	return matrix.Uniform(rng, fanOut, fanIn, epsilon)
}
