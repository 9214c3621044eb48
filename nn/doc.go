// Copyright 2026 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for feedforward networks in the
// Dendrite ML framework.
//
// # Overview
//
// A Network is a fully connected feedforward network where every unit has
// sigmoid activation, including the output layer, and there are no bias
// parameters, only layer weights. Data matrices follow denominator layout:
// one column per sample.
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/dendrite-ml/dendrite/matrix"
//	    "github.com/dendrite-ml/dendrite/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    net, _ := nn.Random(rng, 2, 8, 1)
//
//	    inputs, _ := matrix.FromSlice([]float64{
//	        0, 0, 1, 1,
//	        0, 1, 0, 1,
//	    }, 2, 4)
//	    targets, _ := matrix.FromSlice([]float64{0, 1, 1, 0}, 1, 4)
//
//	    net.Train(inputs, targets, 2000, 0.5)
//	    _ = net.PredictBinary(inputs)
//	}
//
// # Training
//
// Gradients implements backpropagation for the mean squared error loss;
// Train wraps it in plain full-batch gradient descent. For momentum or
// progress logging, drive the network through the optim package and a
// training loop instead of calling Train directly.
package nn
