// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/gradflow-ml/gradflow/internal/engine"
	"github.com/gradflow-ml/gradflow/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config is the base configuration for optimizers.
type Config = optim.Config

// SGD is plain stochastic gradient descent: param -= lr * grad.
type SGD = optim.SGD

// NewSGD creates an SGD optimizer over the given parameter nodes.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.1})
func NewSGD(params []*engine.Value, config Config) *SGD {
	return optim.NewSGD(params, config)
}
