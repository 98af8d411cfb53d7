package engine

import "fmt"

// Mul computes v * other.
//
// Backward pass:
//   - d(a*b)/da = b, so a.grad += b.data * out.grad
//   - d(a*b)/db = a, so b.grad += a.data * out.grad
//
// The rule reads the operands' forward values as captured at construction
// time; nothing is recomputed during the backward pass.
func (v *Value) Mul(other *Value) *Value {
	out := newValue(
		v.data*other.data,
		[]*Value{v, other},
		fmt.Sprintf("(%s * %s)", v.label, other.label),
		"*",
	)
	out.rule = func() {
		v.grad += other.data * out.grad
		other.grad += v.data * out.grad
	}
	return out
}
