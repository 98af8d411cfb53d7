// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/gradflow-ml/gradflow/internal/engine"
	"github.com/gradflow-ml/gradflow/internal/nn"
)

// Module is the interface for components that own trainable parameters.
type Module = nn.Module

// Neuron computes bias + Σ(weight_i * input_i) with an optional ReLU.
type Neuron = nn.Neuron

// Layer maps a set of Neurons over the same input vector.
type Layer = nn.Layer

// MLP is a multi-layer perceptron of fully connected Layers.
type MLP = nn.MLP

// NewNeuron creates a neuron with nin inputs; weights uniform in [-1, 1),
// bias 0.
func NewNeuron(rng *rand.Rand, nin int, nonlin bool) *Neuron {
	return nn.NewNeuron(rng, nin, nonlin)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(rng *rand.Rand, nin, nout int, nonlin bool) *Layer {
	return nn.NewLayer(rng, nin, nout, nonlin)
}

// NewMLP creates a perceptron with nin inputs and one layer per size entry;
// every layer except the last applies ReLU.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	model := nn.NewMLP(rng, 2, []int{4, 1})
func NewMLP(rng *rand.Rand, nin int, sizes []int) *MLP {
	return nn.NewMLP(rng, nin, sizes)
}

// MSE computes mean squared error as a differentiable graph node.
func MSE(preds, targets []*engine.Value) *engine.Value {
	return nn.MSE(preds, targets)
}
