package nn

import (
	"math"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// Sigmoid applies the sigmoid activation element-wise.
//
// σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values into (0, 1); the network applies it at every
// layer, including the output.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(sigmoid)
}

// SigmoidPrime applies the derivative of the sigmoid element-wise.
//
// σ'(x) = σ(x) · (1 - σ(x))
//
// The argument is the pre-activation, not the activation.
func SigmoidPrime(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(func(x float64) float64 {
		s := sigmoid(x)
		return s * (1 - s)
	})
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
