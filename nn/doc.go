// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules built on the scalar engine.
//
// # Overview
//
// Neuron, Layer and MLP compose graph nodes; their weights and biases are
// ordinary leaf nodes that the engine differentiates like any other value.
// Every type implements Module: Parameters() enumerates the owned leaves and
// ZeroGrad() resets their gradient accumulators.
//
// # Training Loop Pattern
//
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	model := nn.NewMLP(rng, 2, []int{4, 1})
//	optimizer := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.1})
//
//	for epoch := 0; epoch < 100; epoch++ {
//	    for _, sample := range samples {
//	        pred := model.Forward(sample.Inputs)[0]
//	        loss := nn.MSE([]*engine.Value{pred}, []*engine.Value{sample.Target})
//
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// Forward returns fresh output nodes on every call while referencing the
// same parameter leaves, so gradient steps accumulate onto the live weights.
package nn
