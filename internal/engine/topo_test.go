package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

// buildDiamond returns a graph where c is consumed by two downstream nodes:
//
//	c = a * b
//	d = c + a
//	e = d * c
func buildDiamond() (a, b, c, d, e *engine.Value) {
	a = engine.NewLeaf(2.0, "a")
	b = engine.NewLeaf(3.0, "b")
	c = a.Mul(b)
	d = c.Add(a)
	e = d.Mul(c)
	return
}

func TestTopoSort_OperandsPrecedeConsumers(t *testing.T) {
	_, _, _, _, e := buildDiamond()

	order := engine.TopoSort(e)

	index := make(map[*engine.Value]int, len(order))
	for i, v := range order {
		index[v] = i
	}

	for i, v := range order {
		for _, operand := range v.Prev() {
			j, ok := index[operand]
			require.True(t, ok, "operand of %q missing from order", v.Label())
			assert.Less(t, j, i, "operand %q does not precede consumer %q", operand.Label(), v.Label())
		}
	}
}

func TestTopoSort_VisitsSharedNodeOnce(t *testing.T) {
	a, b, c, d, e := buildDiamond()

	order := engine.TopoSort(e)

	// 5 distinct nodes, each exactly once, despite c and a being shared.
	require.Len(t, order, 5)
	seen := make(map[*engine.Value]int)
	for _, v := range order {
		seen[v]++
	}
	for _, v := range []*engine.Value{a, b, c, d, e} {
		assert.Equal(t, 1, seen[v])
	}
}

func TestTopoSort_RootLast(t *testing.T) {
	_, _, _, _, e := buildDiamond()

	order := engine.TopoSort(e)

	require.NotEmpty(t, order)
	assert.Same(t, e, order[len(order)-1])
}

func TestTopoSort_Leaf(t *testing.T) {
	a := engine.NewLeaf(1.0, "a")

	order := engine.TopoSort(a)

	require.Len(t, order, 1)
	assert.Same(t, a, order[0])
}

// Structurally identical nodes at different graph positions stay distinct.
func TestTopoSort_IdentityNotStructure(t *testing.T) {
	a := engine.NewLeaf(1.0, "w")
	b := engine.NewLeaf(1.0, "w")
	s := a.Add(b)

	order := engine.TopoSort(s)

	require.Len(t, order, 3)
}
