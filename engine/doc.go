// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides scalar reverse-mode automatic differentiation.
//
// # Overview
//
// The engine builds a DAG of scalar operations as your code runs: every
// operator call computes its result eagerly and records how to differentiate
// it. Backward then computes the gradient of one output with respect to
// every contributing node in a single reverse traversal.
//
// # Basic Usage
//
//	import "github.com/gradflow-ml/gradflow/engine"
//
//	func main() {
//	    x1 := engine.NewLeaf(2.0, "x1")
//	    w1 := engine.NewLeaf(-3.0, "w1")
//	    x2 := engine.NewLeaf(0.0, "x2")
//	    w2 := engine.NewLeaf(1.0, "w2")
//	    b := engine.NewLeaf(6.8813735870195432, "b")
//
//	    n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b)
//	    o := n.Tanh()
//
//	    o.Backward()
//	    fmt.Println(x1.Grad()) // do/dx1
//	}
//
// # Operators
//
// Add, Sub, Mul, Div, Pow, Tanh and Relu, plus AddScalar/SubScalar/MulScalar
// conveniences that wrap constants in anonymous leaves.
//
// Numeric edge cases (division by zero, 0^negative) are not trapped: Inf and
// NaN propagate through values and gradients per IEEE-754. The engine is a
// pure numeric substrate; domain validation belongs to the caller.
//
// # Sharing and accumulation
//
// Nodes are shared by pointer. A node consumed by several downstream
// operations accumulates one gradient contribution per consumer path (the
// multivariate chain rule), which is why gradients must be zeroed between
// training steps:
//
//	a := engine.NewLeaf(3.0, "a")
//	b := a.Add(a)
//	b.Backward()
//	// a.Grad() == 2.0
package engine
