package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
)

// skyBlue matches the terminal aesthetic of classic frequency charts.
var skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// SavePNG renders entries as a horizontal bar chart and writes it to path.
// Entries are expected ranked most frequent first; the chart flips them so
// the most frequent word sits at the top.
func SavePNG(path, title string, entries []wordcount.Entry) error {
	if len(entries) == 0 {
		return errors.New("no words to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency"
	p.Y.Label.Text = "Words"

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, entry := range entries {
		j := len(entries) - 1 - i
		values[j] = float64(entry.Count)
		names[j] = entry.Word
	}

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = skyBlue
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(names...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	return nil
}
