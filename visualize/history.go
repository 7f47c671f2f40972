// Package visualize renders selection runs with gonum/plot.
package visualize

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"github.com/YuminosukeSato/ffselect/selection"
)

// HistoryPlot draws the fitness trajectory of a run. Point 0 is the fitness
// of the full candidate set; point i is the fitness after round i, labelled
// with the feature dropped in that round.
func HistoryPlot(result *selection.Result) (*plot.Plot, error) {
	if result == nil {
		return nil, errors.NewValueError("HistoryPlot", "nil result")
	}

	xys, labels := trajectory(result)

	p := plot.New()
	p.Title.Text = "Backward elimination (" + result.Target + ")"
	p.X.Label.Text = "round"
	p.Y.Label.Text = result.Direction.Label()
	p.X.Tick.Marker = plot.TickerFunc(integerTicks)
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "history line")
	}
	points, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "history points")
	}
	names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, errors.Wrap(err, "history labels")
	}
	p.Add(line, points, names)
	p.Legend.Add(result.Direction.Label(), line, points)

	return p, nil
}

// SaveHistory renders HistoryPlot to path. The format follows the file
// extension (.png, .svg, .pdf, ...).
func SaveHistory(result *selection.Result, path string, width, height vg.Length) error {
	p, err := HistoryPlot(result)
	if err != nil {
		return err
	}
	// vg のバックエンドは未知の拡張子などで panic することがある
	save := func() error { return p.Save(width, height, path) }
	if err := errors.SafeExecute("visualize.SaveHistory", save); err != nil {
		return errors.Wrapf(err, "save history to %s", path)
	}
	return nil
}

func trajectory(result *selection.Result) (plotter.XYs, []string) {
	if len(result.Steps) == 0 {
		return plotter.XYs{{X: 0, Y: result.Fitness}}, []string{"all"}
	}

	xys := make(plotter.XYs, 0, len(result.Steps)+1)
	labels := make([]string, 0, len(result.Steps)+1)
	xys = append(xys, plotter.XY{X: 0, Y: result.Steps[0].Previous})
	labels = append(labels, "all")
	for _, s := range result.Steps {
		xys = append(xys, plotter.XY{X: float64(s.Round), Y: s.Current})
		labels = append(labels, "-"+s.Dropped)
	}
	return xys, labels
}

func integerTicks(lo, hi float64) []plot.Tick {
	var ticks []plot.Tick
	for v := math.Ceil(lo); v <= hi; v++ {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}
