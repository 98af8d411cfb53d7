package engine

// Observer is notified once per node whose gradient rule is about to fire
// during a backward pass. The node is handed over for read-only inspection
// through its accessors; at that point its own gradient is already fully
// accumulated from every consumer.
//
// Observers may block (an interactive step-through waits for a keypress);
// that is the observer's concern, the engine just calls OnStep inline.
type Observer interface {
	OnStep(v *Value)
}

// Backward runs reverse-mode differentiation from v.
//
// It seeds v's gradient to 1 (d(v)/d(v) = 1), builds the topological order
// of the reachable graph, and walks it in reverse, invoking each node's
// gradient rule exactly once. Leaves have no rule and are skipped.
//
// Gradients accumulate: callers training in a loop must zero parameter
// gradients between passes or the previous step's gradient leaks into the
// next update. The engine assumes exclusive access to the graph for the
// duration of the call.
func (v *Value) Backward() {
	v.BackwardWithObserver(nil)
}

// BackwardWithObserver is Backward with a step observer. A nil observer is
// equivalent to Backward.
func (v *Value) BackwardWithObserver(obs Observer) {
	v.grad = 1

	order := TopoSort(v)
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.rule == nil {
			continue
		}
		if obs != nil {
			obs.OnStep(node)
		}
		node.rule()
	}
}
