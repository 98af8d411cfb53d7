package engine

import "fmt"

// Relu computes the rectified linear unit: max(0, v).
//
// Backward pass:
//   - d(relu(x))/dx = 1 if the result is positive, else 0
func (v *Value) Relu() *Value {
	data := v.data
	if data < 0 {
		data = 0
	}
	out := newValue(
		data,
		[]*Value{v},
		fmt.Sprintf("relu(%s)", v.label),
		"relu",
	)
	out.rule = func() {
		if out.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}
