package engine

import "fmt"

// Add computes v + other.
//
// Backward pass:
//   - d(a+b)/da = 1, so a.grad += out.grad
//   - d(a+b)/db = 1, so b.grad += out.grad
func (v *Value) Add(other *Value) *Value {
	out := newValue(
		v.data+other.data,
		[]*Value{v, other},
		fmt.Sprintf("(%s + %s)", v.label, other.label),
		"+",
	)
	out.rule = func() {
		v.grad += out.grad
		other.grad += out.grad
	}
	return out
}
