// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders computation graphs: a plain ASCII tree via Draw, and
// an interactive colored backprop step-through via Stepper, which plugs into
// the engine as an Observer:
//
//	o.BackwardWithObserver(viz.NewStepper(o))
//
// Rendering is read-only; the graph is never mutated.
package viz

import (
	"io"

	"github.com/gradflow-ml/gradflow/internal/engine"
	"github.com/gradflow-ml/gradflow/internal/viz"
)

// Stepper displays backward propagation one node at a time, pausing for
// Enter between steps.
type Stepper = viz.Stepper

// Draw renders the graph reachable from root as an indented ASCII tree.
func Draw(root *engine.Value) string {
	return viz.Draw(root)
}

// NewStepper creates a Stepper prompting on stdin/stdout.
func NewStepper(root *engine.Value) *Stepper {
	return viz.NewStepper(root)
}

// NewStepperIO is NewStepper with explicit streams.
func NewStepperIO(root *engine.Value, in io.Reader, out io.Writer) *Stepper {
	return viz.NewStepperIO(root, in, out)
}
