package engine

import "fmt"

// Div computes v / other.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so a.grad += out.grad / b.data
//   - d(a/b)/db = -a/b², so b.grad += out.grad * (-a.data / b.data²)
//
// Division by zero is not trapped: the resulting Inf/NaN propagates through
// both the forward value and the backward gradient, per IEEE-754. Callers
// needing domain validity must check before constructing the node.
func (v *Value) Div(other *Value) *Value {
	out := newValue(
		v.data/other.data,
		[]*Value{v, other},
		fmt.Sprintf("(%s / %s)", v.label, other.label),
		"/",
	)
	out.rule = func() {
		v.grad += out.grad / other.data
		other.grad += out.grad * (-v.data / (other.data * other.data))
	}
	return out
}
