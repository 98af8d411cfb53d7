// Package viz renders computation graphs for the terminal.
//
// It consumes only the engine's read-only accessors (Data, Grad, Label, Op,
// Prev) and never mutates the graph. Two renderers are provided: Draw, a
// plain ASCII tree of the DAG, and Stepper, an interactive backprop
// step-through with lipgloss coloring.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

// styleFunc picks a style for one node line. nil means no styling.
type styleFunc func(v *engine.Value) lipgloss.Style

// Draw renders the graph reachable from root as an indented ASCII tree.
//
// Each node is printed as "[data, grad] label" with its operator tag on the
// line below and operands indented beneath that. A node shared by several
// consumers is printed in full once; revisits are suppressed through an
// identity-keyed visited set, so the output stays finite and honest about
// sharing.
func Draw(root *engine.Value) string {
	return draw(root, nil)
}

func draw(root *engine.Value, style styleFunc) string {
	var b strings.Builder
	visited := make(map[*engine.Value]struct{})
	drawNode(&b, root, visited, "", style)
	return b.String()
}

func drawNode(b *strings.Builder, v *engine.Value, visited map[*engine.Value]struct{}, prefix string, style styleFunc) {
	if _, ok := visited[v]; ok {
		return
	}
	visited[v] = struct{}{}

	line := fmt.Sprintf("%s[%.4f, %.4f] %s", prefix, v.Data(), v.Grad(), v.Label())
	if style != nil {
		line = style(v).Render(line)
	}
	b.WriteString(line)
	b.WriteByte('\n')

	prev := v.Prev()
	if len(prev) == 0 {
		return
	}

	opPrefix := prefix + "    "
	b.WriteString(fmt.Sprintf("%s└─ %s\n", opPrefix, v.Op()))
	for _, child := range prev {
		drawNode(b, child, visited, opPrefix+"    ", style)
	}
}
