package nn

import (
	"math/rand"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

// Layer maps nout Neurons over the same input vector, producing one output
// node per neuron.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a fully connected layer of nout neurons with nin inputs
// each. The nonlinearity flag is shared by all neurons in the layer.
func NewLayer(rng *rand.Rand, nin, nout int, nonlin bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(rng, nin, nonlin)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to the same input vector.
func (l *Layer) Forward(inputs []*engine.Value) []*engine.Value {
	outs := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(inputs)
	}
	return outs
}

// Parameters returns all neuron parameters, flattened in neuron order.
func (l *Layer) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets all parameter gradients.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}
