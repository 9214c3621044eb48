// Package optim implements optimization algorithms for training networks.
//
// Optimizers update weight matrices in place from gradients computed by the
// nn package. Design inspired by PyTorch's torch.optim, scaled down to the
// weight-list model this framework uses.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	for iter := 0; iter < iterations; iter++ {
//	    grads := net.Gradients(input, target)
//	    sgd.Step(net.Weights(), grads)
//	}
package optim

import "github.com/dendrite-ml/dendrite/internal/matrix"

// Optimizer is the base interface for all optimization algorithms.
//
// Step applies one update to the given weights from the matching gradients.
// The two slices are parallel: grads[i] is the gradient for weights[i], with
// identical shape. Weights are mutated in place.
type Optimizer interface {
	Step(weights, grads []*matrix.Matrix)

	// LR returns the current learning rate, for monitoring and scheduling.
	LR() float64
}
