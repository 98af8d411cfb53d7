package engine

// TopoSort returns every node reachable from root, operands strictly before
// consumers, each distinct node exactly once.
//
// Deduplication is by pointer identity. Two nodes with equal data, operands
// and operator are still separate graph positions (two weights initialized
// to the same value must not collapse into one), so the visited set is keyed
// on *Value, never on node contents.
//
// Walking the returned order in reverse guarantees that a node's own
// gradient is fully accumulated from all of its consumers before the node
// propagates to its operands — the invariant the backward pass relies on for
// shared subexpressions.
func TopoSort(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]struct{})

	var visit func(v *Value)
	visit = func(v *Value) {
		if _, ok := visited[v]; ok {
			return
		}
		visited[v] = struct{}{}
		for _, child := range v.prev {
			visit(child)
		}
		order = append(order, v)
	}
	visit(root)

	return order
}
