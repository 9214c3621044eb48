// Copyright 2026 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/dendrite-ml/dendrite/internal/optim"

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (gradient descent with optional momentum)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
