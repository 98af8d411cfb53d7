// Copyright 2025 Gradflow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package engine

import "github.com/gradflow-ml/gradflow/internal/engine"

// Value is a node in the computation graph: one scalar, its accumulated
// gradient, and the provenance needed to backpropagate through it.
type Value = engine.Value

// Observer is notified once per node visited during a backward pass.
type Observer = engine.Observer

// NewLeaf creates a leaf node with no operands and a zero gradient.
//
// Example:
//
//	x := engine.NewLeaf(2.0, "x")
func NewLeaf(data float64, label string) *Value {
	return engine.NewLeaf(data, label)
}

// TopoSort returns the nodes reachable from root in topological order:
// operands strictly before consumers, each distinct node exactly once.
func TopoSort(root *Value) []*Value {
	return engine.TopoSort(root)
}
