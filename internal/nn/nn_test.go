package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradflow-ml/gradflow/internal/engine"
	"github.com/gradflow-ml/gradflow/internal/optim"
)

func TestNeuron_ParameterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 3, true)

	params := n.Parameters()
	require.Len(t, params, 4) // 3 weights + bias
}

func TestNeuron_Init(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 8, false)

	params := n.Parameters()
	for _, w := range params[:8] {
		assert.GreaterOrEqual(t, w.Data(), -1.0)
		assert.Less(t, w.Data(), 1.0)
	}
	bias := params[8]
	assert.Equal(t, 0.0, bias.Data())
	assert.Equal(t, "b", bias.Label())
}

func TestNeuron_Forward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 2, false)

	// Pin the parameters so the activation is deterministic.
	params := n.Parameters()
	params[0].SetData(2.0)  // w0
	params[1].SetData(-1.0) // w1
	params[2].SetData(0.5)  // b

	inputs := []*engine.Value{
		engine.NewLeaf(1.0, "x1"),
		engine.NewLeaf(3.0, "x2"),
	}
	out := n.Forward(inputs)

	// 0.5 + 2*1 + (-1)*3 = -0.5
	assert.InDelta(t, -0.5, out.Data(), 1e-12)
}

func TestNeuron_ForwardNonlin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 2, true)

	params := n.Parameters()
	params[0].SetData(2.0)
	params[1].SetData(-1.0)
	params[2].SetData(0.5)

	inputs := []*engine.Value{
		engine.NewLeaf(1.0, "x1"),
		engine.NewLeaf(3.0, "x2"),
	}
	out := n.Forward(inputs)

	// relu(-0.5) = 0
	assert.Equal(t, 0.0, out.Data())
	assert.Equal(t, "relu", out.Op())
}

func TestNeuron_ForwardArityPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 2, false)

	assert.Panics(t, func() {
		n.Forward([]*engine.Value{engine.NewLeaf(1.0, "x")})
	})
}

// Successive forward calls must reference the same parameter nodes, not
// clones — otherwise updates would never reach the next step's graph.
func TestNeuron_ForwardSharesParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 1, false)

	in := []*engine.Value{engine.NewLeaf(1.0, "x")}
	n.Forward(in).Backward()
	first := n.Parameters()[0].Grad()
	n.Forward(in).Backward()

	assert.Equal(t, 2*first, n.Parameters()[0].Grad())
}

func TestLayer_OutputWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := NewLayer(rng, 3, 5, true)

	inputs := []*engine.Value{
		engine.NewLeaf(1.0, "a"),
		engine.NewLeaf(2.0, "b"),
		engine.NewLeaf(3.0, "c"),
	}
	outs := l.Forward(inputs)

	assert.Len(t, outs, 5)
	assert.Len(t, l.Parameters(), 5*(3+1))
}

func TestMLP_ParameterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMLP(rng, 2, []int{4, 1})

	// Layer 1: 4 neurons * (2 weights + bias) = 12
	// Layer 2: 1 neuron * (4 weights + bias) = 5
	assert.Len(t, m.Parameters(), 17)
}

func TestMLP_ForwardWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMLP(rng, 2, []int{4, 3})

	outs := m.Forward([]*engine.Value{
		engine.NewLeaf(0.5, "x1"),
		engine.NewLeaf(-0.5, "x2"),
	})
	assert.Len(t, outs, 3)
}

func TestMLP_EmptySizesPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { NewMLP(rng, 2, nil) })
}

// zero_grad is idempotent: every parameter gradient is 0 afterwards no
// matter what accumulated before.
func TestMLP_ZeroGrad(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMLP(rng, 2, []int{4, 1})

	out := m.Forward([]*engine.Value{
		engine.NewLeaf(1.0, "x1"),
		engine.NewLeaf(1.0, "x2"),
	})[0]
	out.Backward()

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

func TestMSE(t *testing.T) {
	preds := []*engine.Value{
		engine.NewLeaf(1.0, "p1"),
		engine.NewLeaf(3.0, "p2"),
	}
	targets := []*engine.Value{
		engine.NewLeaf(0.0, "t1"),
		engine.NewLeaf(1.0, "t2"),
	}

	loss := MSE(preds, targets)

	// ((1-0)² + (3-1)²) / 2 = 2.5
	assert.InDelta(t, 2.5, loss.Data(), 1e-12)
	assert.Equal(t, "mse", loss.Label())
}

func TestMSE_MismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		MSE([]*engine.Value{engine.NewLeaf(1, "p")}, nil)
	})
}

// trainXOR runs one full training attempt and reports whether the model
// converged: average loss dropped and at least 3 of 4 rows classify
// correctly (absolute error < 0.5).
func trainXOR(seed int64) bool {
	rng := rand.New(rand.NewSource(seed))
	m := NewMLP(rng, 2, []int{4, 1})
	sgd := optim.NewSGD(m.Parameters(), optim.Config{LR: 0.1})

	rows := [][3]float64{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}

	forward := func(row [3]float64) *engine.Value {
		return m.Forward([]*engine.Value{
			engine.NewLeaf(row[0], "x1"),
			engine.NewLeaf(row[1], "x2"),
		})[0]
	}

	var first, last float64
	for epoch := 0; epoch < 100; epoch++ {
		epochLoss := 0.0
		for _, row := range rows {
			pred := forward(row)
			target := engine.NewLeaf(row[2], "y")
			loss := MSE([]*engine.Value{pred}, []*engine.Value{target})
			epochLoss += loss.Data()

			sgd.ZeroGrad()
			loss.Backward()
			sgd.Step()
		}
		epochLoss /= float64(len(rows))
		if epoch == 0 {
			first = epochLoss
		}
		last = epochLoss
	}

	if last >= first {
		return false
	}
	correct := 0
	for _, row := range rows {
		if math.Abs(forward(row).Data()-row[2]) < 0.5 {
			correct++
		}
	}
	return correct >= 3
}

// TestMLP_LearnsXOR trains a 2-4-1 MLP on the XOR rows. Individual seeds can
// land in dead-ReLU regions, so a small retry budget is part of the
// contract: at least one of the seeds must converge.
func TestMLP_LearnsXOR(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	for _, seed := range seeds {
		if trainXOR(seed) {
			return
		}
	}
	t.Fatalf("no seed in %v converged on XOR", seeds)
}
