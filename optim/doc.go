// Copyright 2026 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for optimizers in the Dendrite ML
// framework.
//
// Optimizers update a network's weight matrices in place from gradients
// computed by nn.Network.Gradients:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
//	for iter := 0; iter < iterations; iter++ {
//	    grads := net.Gradients(inputs, targets)
//	    sgd.Step(net.Weights(), grads)
//	}
package optim
