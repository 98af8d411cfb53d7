// Package optim implements gradient-descent optimizers for scalar parameter
// nodes.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.1})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := nn.MSE(model.Forward(inputs), targets)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import "github.com/gradflow-ml/gradflow/internal/engine"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its currently
	// accumulated gradient.
	Step()

	// ZeroGrad clears all parameter gradients. Call before each backward
	// pass; gradients accumulate and are never overwritten by the engine.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for optimizers.
type Config struct {
	LR float64 // Learning rate (default: 0.01)
}

// zeroGrad clears gradients for a parameter slice.
func zeroGrad(params []*engine.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
