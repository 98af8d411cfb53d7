package nn

import (
	"math/rand"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

// MLP is a multi-layer perceptron: Layers built from consecutive size pairs,
// with ReLU on every layer except the last. The final layer stays linear so
// outputs are unbounded regression values.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	model := nn.NewMLP(rng, 2, []int{4, 1}) // 2 inputs, 4 hidden, 1 output
//	out := model.Forward(inputs)[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates a perceptron with nin inputs and one layer per entry in
// sizes. Panics on an empty sizes slice.
func NewMLP(rng *rand.Rand, nin int, sizes []int) *MLP {
	if len(sizes) == 0 {
		panic("nn: MLP needs at least one layer size")
	}

	dims := append([]int{nin}, sizes...)
	layers := make([]*Layer, len(sizes))
	for i := range layers {
		last := i == len(sizes)-1
		layers[i] = NewLayer(rng, dims[i], dims[i+1], !last)
	}
	return &MLP{layers: layers}
}

// Forward threads the input vector through each layer in order.
func (m *MLP) Forward(inputs []*engine.Value) []*engine.Value {
	outs := inputs
	for _, l := range m.layers {
		outs = l.Forward(outs)
	}
	return outs
}

// Parameters returns all layer parameters, flattened in layer order.
func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets all parameter gradients.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}
