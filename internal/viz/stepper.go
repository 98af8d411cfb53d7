package viz

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	graphStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	plainStyle     = lipgloss.NewStyle()
)

// Stepper is an engine.Observer that displays backward propagation one node
// at a time. For each step it prints a description of the node whose rule is
// about to fire, renders the whole graph with the active node highlighted and
// completed nodes dimmed green, then blocks until the user presses Enter.
//
// Blocking happens inside OnStep, which the engine invokes inline; the
// engine itself has no notion of pausing.
type Stepper struct {
	root      *engine.Value
	active    map[*engine.Value]struct{}
	completed map[*engine.Value]struct{}
	in        *bufio.Reader
	out       io.Writer
}

// NewStepper creates a Stepper over the graph rooted at root, prompting on
// stdin/stdout.
func NewStepper(root *engine.Value) *Stepper {
	return NewStepperIO(root, os.Stdin, os.Stdout)
}

// NewStepperIO is NewStepper with explicit streams, for tests and embedding.
func NewStepperIO(root *engine.Value, in io.Reader, out io.Writer) *Stepper {
	return &Stepper{
		root:      root,
		active:    make(map[*engine.Value]struct{}),
		completed: make(map[*engine.Value]struct{}),
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// OnStep implements engine.Observer.
func (s *Stepper) OnStep(v *engine.Value) {
	s.active[v] = struct{}{}

	fmt.Fprintf(s.out, "\n%s\n", headerStyle.Render("Current Operation:"))
	fmt.Fprintf(s.out, "Computing gradient for node %q\n", v.Label())
	fmt.Fprintf(s.out, "Current value: %.4f\nCurrent gradient: %.4f\nOperation: %s\n", v.Data(), v.Grad(), v.Op())

	fmt.Fprintf(s.out, "\n%s\n", graphStyle.Render("Computation Graph:"))
	fmt.Fprint(s.out, draw(s.root, s.styleFor))

	fmt.Fprintln(s.out, "\nPress Enter to continue...")
	// Errors (e.g. closed stdin) just stop the pausing, not the pass.
	_, _ = s.in.ReadString('\n')

	delete(s.active, v)
	s.completed[v] = struct{}{}
}

func (s *Stepper) styleFor(v *engine.Value) lipgloss.Style {
	if _, ok := s.active[v]; ok {
		return activeStyle
	}
	if _, ok := s.completed[v]; ok {
		return completedStyle
	}
	return plainStyle
}
