// Package plot renders training-loss curves to image files.
//
// Like the other collaborators it sees nothing of the graph — just the
// scalar loss sequence the training loop already has.
package plot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Losses writes a per-epoch loss line chart to path. The image format is
// inferred from the extension (.png, .svg, .pdf, ...).
func Losses(losses []float64, path string) error {
	if len(losses) == 0 {
		return errors.New("plot: no losses to plot")
	}

	p := plot.New()
	p.Title.Text = "Training Loss"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Loss"

	pts := make(plotter.XYs, len(losses))
	for i, l := range losses {
		pts[i].X = float64(i)
		pts[i].Y = l
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "build loss line")
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save loss plot %s", path)
	}
	return nil
}
