package engine

import (
	"fmt"
	"math"
)

// Pow computes v raised to a constant exponent.
//
// Backward pass (power rule):
//   - d(a^n)/da = n * a^(n-1), so a.grad += n * a.data^(n-1) * out.grad
//
// The exponent is a plain constant captured by the gradient rule, not a
// graph node; 0^negative and similar edge cases follow math.Pow semantics.
func (v *Value) Pow(exponent float64) *Value {
	out := newValue(
		math.Pow(v.data, exponent),
		[]*Value{v},
		fmt.Sprintf("%s^%g", v.label, exponent),
		"pow",
	)
	out.rule = func() {
		v.grad += exponent * math.Pow(v.data, exponent-1) * out.grad
	}
	return out
}
