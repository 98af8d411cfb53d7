package engine

import (
	"fmt"
	"math"
)

// Tanh computes the hyperbolic tangent of v:
// tanh(x) = (e^x - e^-x) / (e^x + e^-x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
//
// The rule reuses the already-computed output instead of recomputing tanh.
func (v *Value) Tanh() *Value {
	t := math.Tanh(v.data)
	out := newValue(
		t,
		[]*Value{v},
		fmt.Sprintf("tanh(%s)", v.label),
		"tanh",
	)
	out.rule = func() {
		v.grad += (1 - t*t) * out.grad
	}
	return out
}
