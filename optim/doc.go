// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers for parameter nodes.
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.1})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    // 1. Zero gradients (they accumulate otherwise)
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    loss := nn.MSE(model.Forward(inputs), targets)
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
