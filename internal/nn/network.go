// Package nn implements the feedforward network at the core of the Dendrite
// ML framework.
//
// The package provides:
//   - Network: a fully connected feedforward network
//   - Sigmoid activation and its derivative
//   - Glorot-uniform weight initialization
//   - MSE loss
//   - Checkpoint save/load
//
// Every unit uses sigmoid activation, including the output layer, and there
// are no bias parameters, only layer weights. Data matrices follow
// denominator layout: each column is one sample.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// Network is a fully connected feedforward network with sigmoid activation
// at every layer.
//
// A network holds one weight matrix per layer transition, so a network with
// N weight matrices has N+1 layers (counting input and output). The weight
// matrix for a transition from nIn units to nOut units has shape
// [nOut, nIn], and the forward pass for a batch A of shape [nIn, batch] is
// σ(W · A).
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	net, err := nn.Random(rng, 2, 8, 1) // 2 inputs, 8 hidden, 1 output
//	out := net.Predict(inputs)          // inputs: [2, batch]
type Network struct {
	weights []*matrix.Matrix
}

// NewNetwork creates a network from explicit weight matrices.
//
// Adjacent weights must chain: weights[i+1].Cols() == weights[i].Rows().
// Returns an error if no weights are given or the chain is broken.
func NewNetwork(weights ...*matrix.Matrix) (*Network, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("network needs at least one weight matrix")
	}
	for i := 1; i < len(weights); i++ {
		if weights[i].Cols() != weights[i-1].Rows() {
			return nil, fmt.Errorf("weight %d has %d columns, want %d to follow weight %d",
				i, weights[i].Cols(), weights[i-1].Rows(), i-1)
		}
	}
	return &Network{weights: weights}, nil
}

// Random creates a network with Glorot-uniform initialized weights.
//
// layerUnits gives the number of units in each layer, including the input
// (first) and output (last) layers, so at least two values are required.
//
// Parameters:
//   - rng: Random source for weight initialization
//   - layerUnits: Unit count per layer
//
// Returns an error if fewer than two layer sizes are given or any size is
// not positive.
func Random(rng *rand.Rand, layerUnits ...int) (*Network, error) {
	if len(layerUnits) < 2 {
		return nil, fmt.Errorf("network needs at least two layers, got %d", len(layerUnits))
	}
	for i, units := range layerUnits {
		if units <= 0 {
			return nil, fmt.Errorf("layer %d has invalid unit count %d", i, units)
		}
	}
	weights := make([]*matrix.Matrix, len(layerUnits)-1)
	for i := range weights {
		weights[i] = GlorotUniform(rng, layerUnits[i], layerUnits[i+1])
	}
	return &Network{weights: weights}, nil
}

// NumLayers returns the number of layers, including input and output.
func (n *Network) NumLayers() int {
	return len(n.weights) + 1
}

// Weights returns the layer weight matrices in forward order.
//
// The slice and the matrices are shared with the network; optimizers mutate
// them in place.
func (n *Network) Weights() []*matrix.Matrix {
	return n.weights
}

// InputUnits returns the number of units in the input layer.
func (n *Network) InputUnits() int {
	return n.weights[0].Cols()
}

// OutputUnits returns the number of units in the output layer.
func (n *Network) OutputUnits() int {
	return n.weights[len(n.weights)-1].Rows()
}

// Predict performs forward propagation over the network.
//
// Input shape: [input_units, batch]. Output shape: [output_units, batch].
// Panics if the input row count does not match the input layer.
func (n *Network) Predict(input *matrix.Matrix) *matrix.Matrix {
	n.checkInput(input)
	activation := input
	for _, w := range n.weights {
		activation = Sigmoid(w.MatMul(activation))
	}
	return activation
}

// PredictBinary performs forward propagation and thresholds the outputs to
// 0 or 1.
//
// Outputs of at least 0.5 map to 1, everything below to 0.
func (n *Network) PredictBinary(input *matrix.Matrix) *matrix.Matrix {
	return n.Predict(input).Apply(func(v float64) float64 {
		if v >= 0.5 {
			return 1
		}
		return 0
	})
}

// Gradients computes the gradient of the MSE loss with respect to each
// weight matrix via backpropagation.
//
// The loss is sum((prediction - target)²) / batch, so the returned
// gradients carry the factor 2/batch. Shapes match the weight matrices,
// in forward order.
//
// Parameters:
//   - input: Input batch with shape [input_units, batch]
//   - target: Expected outputs with shape [output_units, batch]
func (n *Network) Gradients(input, target *matrix.Matrix) []*matrix.Matrix {
	n.checkInput(input)
	if target.Rows() != n.OutputUnits() || target.Cols() != input.Cols() {
		panic(fmt.Sprintf("Network.Gradients: target shape %dx%d, want %dx%d",
			target.Rows(), target.Cols(), n.OutputUnits(), input.Cols()))
	}

	// Forward pass, keeping pre-activations and activations per layer.
	preActivations := make([]*matrix.Matrix, len(n.weights))
	activations := make([]*matrix.Matrix, len(n.weights)+1)
	activations[0] = input
	for i, w := range n.weights {
		z := w.MatMul(activations[i])
		preActivations[i] = z
		activations[i+1] = Sigmoid(z)
	}

	batch := float64(input.Cols())
	grads := make([]*matrix.Matrix, len(n.weights))

	// Output layer error.
	last := len(n.weights) - 1
	delta := activations[last+1].Sub(target).Hadamard(SigmoidPrime(preActivations[last]))
	grads[last] = delta.MatMul(activations[last].Transpose()).Scale(2 / batch)

	// Propagate backwards through the hidden layers.
	for layer := last - 1; layer >= 0; layer-- {
		delta = n.weights[layer+1].Transpose().MatMul(delta).Hadamard(SigmoidPrime(preActivations[layer]))
		grads[layer] = delta.MatMul(activations[layer].Transpose()).Scale(2 / batch)
	}

	return grads
}

// Train runs full-batch gradient descent on the given data.
//
// Each iteration computes gradients over the whole batch and updates every
// weight matrix in place: W -= lr · grad.
//
// Parameters:
//   - input: Input batch with shape [input_units, batch]
//   - target: Expected outputs with shape [output_units, batch]
//   - iterations: Number of gradient descent steps
//   - lr: Learning rate
func (n *Network) Train(input, target *matrix.Matrix, iterations int, lr float64) {
	for iter := 0; iter < iterations; iter++ {
		grads := n.Gradients(input, target)
		for i, w := range n.weights {
			updated := w.Sub(grads[i].Scale(lr))
			copy(w.Data(), updated.Data())
		}
	}
}

func (n *Network) checkInput(input *matrix.Matrix) {
	if input.Rows() != n.InputUnits() {
		panic(fmt.Sprintf("Network: input has %d rows, want %d (one row per input unit)",
			input.Rows(), n.InputUnits()))
	}
}
