// Package nn implements neural network modules on top of the scalar autodiff
// engine.
//
// This package provides the building blocks for small fully connected
// networks:
//   - Module interface: anything that owns trainable parameters
//   - Neuron: weighted sum plus bias, optional ReLU
//   - Layer: a slice of Neurons over the same input vector
//   - MLP: Layers threaded in sequence
//   - MSE: mean squared error loss built from engine ops
//
// Design inspired by PyTorch's nn.Module, sized for scalar graphs.
package nn

import "github.com/gradflow-ml/gradflow/internal/engine"

// Module is the base interface for components that own trainable parameters.
//
// Forward composition is deliberately not part of the interface: Neuron
// returns one node, Layer and MLP return a vector, so each exposes its own
// Forward method.
type Module interface {
	// Parameters returns all owned weight and bias nodes, flattened.
	// The returned nodes are the live parameters, not copies: mutating
	// their data or gradient affects the module.
	Parameters() []*engine.Value

	// ZeroGrad resets every parameter's gradient accumulator. Mandatory
	// before each backward pass — gradients are additive, and a stale
	// gradient from the previous step corrupts the next update.
	ZeroGrad()
}

// zeroGrad clears gradients for a parameter slice.
func zeroGrad(params []*engine.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
