// Package engine implements scalar reverse-mode automatic differentiation.
//
// The engine builds a directed acyclic graph of scalar operations as a
// program executes. Every operator call eagerly computes its result and
// attaches the gradient rule needed to propagate through it later. Calling
// Backward on an output node walks the graph once in reverse topological
// order and accumulates the gradient of the output with respect to every
// node that contributed to it.
//
// Architecture:
//   - Value: one scalar plus its gradient accumulator and provenance
//   - Operator library: Add, Sub, Mul, Div, Pow, Tanh, Relu
//   - TopoSort: identity-deduped postorder over the reachable graph
//   - Backward: reverse walk applying each node's gradient rule exactly once
//
// Usage:
//
//	a := engine.NewLeaf(2.0, "a")
//	b := engine.NewLeaf(-3.0, "b")
//	c := a.Mul(b)
//	c.Backward()
//	fmt.Println(a.Grad()) // dc/da = -3.0
package engine

// Value is a node in the computation graph. It holds the forward-computed
// scalar, the gradient accumulator, and enough provenance (operands, operator
// tag, gradient rule) to participate in a backward pass.
//
// Values are shared by pointer: a node used as an operand of several
// downstream operations is the same *Value in all of them, and its gradient
// accumulates one contribution per consumer path. All visitation in the
// engine is keyed on pointer identity, never on structural equality — two
// nodes holding equal data are still distinct graph positions.
//
// Only the gradient and the label mutate after construction (plus the data
// slot, which the optimizer adjusts between passes); the operand list and
// operator tag are fixed for the node's lifetime.
type Value struct {
	data  float64
	grad  float64
	label string
	op    string   // operator tag, "" for leaves
	prev  []*Value // operands, in operator order
	rule  func()   // gradient rule; nil for leaves
}

// NewLeaf creates a leaf node: a plain scalar with no operands and no
// gradient rule. Leaves are the only ingress point for external data —
// inputs, targets and trainable parameters all start here.
func NewLeaf(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// newValue creates an operator result node.
func newValue(data float64, prev []*Value, label, op string) *Value {
	return &Value{data: data, label: label, op: op, prev: prev}
}

// Data returns the forward-computed scalar.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the scalar. Used by the optimizer update step; calling
// it on an interior node does not recompute downstream results.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient d(output)/d(v) from the most recent
// backward pass.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the gradient. Backward seeds the root with 1 itself;
// SetGrad exists for callers that want a non-unit cotangent.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets the gradient accumulator. Gradients are additive across
// backward passes, so callers must zero them between training steps.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Label returns the debug/display name.
func (v *Value) Label() string {
	return v.label
}

// SetLabel replaces the synthesized label with a caller-chosen name.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// Op returns the operator tag that produced this node ("+", "-", "*", "/",
// "pow", "tanh", "relu") or "" for a leaf.
func (v *Value) Op() string {
	return v.op
}

// Prev returns the operand nodes. The returned slice shares the node's own
// references so that renderers can detect revisits by identity; callers must
// not mutate it.
func (v *Value) Prev() []*Value {
	return v.prev
}
