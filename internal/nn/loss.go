package nn

import (
	"fmt"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// MSE computes the mean squared error between predictions and targets.
//
// Loss = mean((predictions - targets)²), averaged over every element.
// Panics if the shapes differ.
func MSE(predictions, targets *matrix.Matrix) float64 {
	if predictions.Rows() != targets.Rows() || predictions.Cols() != targets.Cols() {
		panic(fmt.Sprintf("MSE: shape mismatch %dx%d vs %dx%d",
			predictions.Rows(), predictions.Cols(), targets.Rows(), targets.Cols()))
	}
	diff := predictions.Sub(targets)
	var sum float64
	for _, v := range diff.Data() {
		sum += v * v
	}
	return sum / float64(len(diff.Data()))
}
