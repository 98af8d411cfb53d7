package engine

import "strconv"

// Scalar operand conveniences. Each wraps the constant in an anonymous leaf
// so the result is an ordinary graph node; the constant still receives a
// gradient, it is simply never read.

// AddScalar computes v + c.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(constLeaf(c))
}

// SubScalar computes v - c.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(constLeaf(c))
}

// MulScalar computes v * c.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(constLeaf(c))
}

func constLeaf(c float64) *Value {
	return NewLeaf(c, strconv.FormatFloat(c, 'g', -1, 64))
}
