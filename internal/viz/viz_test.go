package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

func TestDraw_Basic(t *testing.T) {
	a := engine.NewLeaf(2.0, "a")
	b := engine.NewLeaf(3.0, "b")
	c := a.Mul(b)
	c.SetLabel("c")

	out := Draw(c)

	assert.Contains(t, out, "c")
	assert.Contains(t, out, "└─ *")
	assert.Contains(t, out, "[2.0000, 0.0000] a")
	assert.Contains(t, out, "[3.0000, 0.0000] b")
}

func TestDraw_SharedNodeOnce(t *testing.T) {
	a := engine.NewLeaf(3.0, "shared")
	b := a.Add(a)

	out := Draw(b)

	// The leaf line appears once; the root label mentions the name too.
	assert.Equal(t, 1, strings.Count(out, "] shared"))
	assert.Contains(t, out, "(shared + shared)")
}

func TestDraw_ShowsGradients(t *testing.T) {
	a := engine.NewLeaf(2.0, "a")
	c := a.Tanh()
	c.Backward()

	out := Draw(c)

	assert.Contains(t, out, "1.0000] tanh(a)")
}

func TestStepper_StepsThroughBackward(t *testing.T) {
	a := engine.NewLeaf(2.0, "a")
	b := engine.NewLeaf(3.0, "b")
	d := a.Mul(b).Tanh()

	var out strings.Builder
	// One newline per operator node keeps OnStep from blocking.
	stepper := NewStepperIO(d, strings.NewReader("\n\n"), &out)
	d.BackwardWithObserver(stepper)

	text := out.String()
	require.NotEmpty(t, text)
	assert.Equal(t, 2, strings.Count(text, "Current Operation:"))
	assert.Contains(t, text, "Press Enter to continue...")
	assert.Contains(t, text, "Operation: tanh")

	// The pass itself must still be correct under observation.
	assert.InDelta(t, 3.0*(1-d.Data()*d.Data()), a.Grad(), 1e-9)
}

func TestStepper_ClosedInputDoesNotBlock(t *testing.T) {
	a := engine.NewLeaf(1.0, "a")
	c := a.Relu()

	var out strings.Builder
	stepper := NewStepperIO(c, strings.NewReader(""), &out)
	c.BackwardWithObserver(stepper)

	assert.Equal(t, 1.0, a.Grad())
}
