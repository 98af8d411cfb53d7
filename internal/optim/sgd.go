package optim

import "github.com/gradflow-ml/gradflow/internal/engine"

// SGD implements plain stochastic gradient descent:
//
//	param = param - lr * gradient
//
// No momentum, no adaptive scaling. The parameters are live graph nodes;
// Step mutates their data slots in place between passes.
type SGD struct {
	params []*engine.Value
	lr     float64
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*engine.Value, config Config) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{params: params, lr: config.LR}
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for _, p := range s.params {
		p.SetData(p.Data() - s.lr*p.Grad())
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for manual scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
