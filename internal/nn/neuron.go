package nn

import (
	"fmt"
	"math/rand"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

// Neuron computes bias + Σ(weight_i * input_i), optionally followed by ReLU.
//
// The neuron owns its weight and bias nodes. Forward builds a fresh
// subexpression on every call that references (does not copy) those
// parameters, so gradients from successive training steps land on the same
// nodes.
type Neuron struct {
	weights []*engine.Value
	bias    *engine.Value
	nonlin  bool
}

// NewNeuron creates a neuron with nin inputs. Weights are initialized
// uniformly in [-1, 1), the bias to 0. The rng is explicit so training runs
// are reproducible.
func NewNeuron(rng *rand.Rand, nin int, nonlin bool) *Neuron {
	weights := make([]*engine.Value, nin)
	for i := range weights {
		weights[i] = engine.NewLeaf(rng.Float64()*2-1, fmt.Sprintf("w%d", i))
	}
	return &Neuron{
		weights: weights,
		bias:    engine.NewLeaf(0, "b"),
		nonlin:  nonlin,
	}
}

// Forward computes the neuron's activation for one input vector.
// Panics if the input width does not match the weight count — arity misuse
// is a programming error, not a recoverable condition.
func (n *Neuron) Forward(inputs []*engine.Value) *engine.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	if n.nonlin {
		act = act.Relu()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*engine.Value {
	return append(append([]*engine.Value{}, n.weights...), n.bias)
}

// ZeroGrad resets all parameter gradients.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}
