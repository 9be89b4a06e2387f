package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

// Histogram draws the distribution of one column. NaN values are skipped.
func Histogram(f *data.Frame, column string, bins int, path string) error {
	col, err := f.Col(column)
	if err != nil {
		return err
	}
	vals := plotter.Values(stats.DropNaN(col))
	if len(vals) == 0 {
		return fmt.Errorf("%w: %s has no values", ErrNoColumns, column)
	}
	if bins < 1 {
		bins = 1
	}
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}

	p := plot.New()
	p.Title.Text = column
	p.X.Label.Text = column
	p.Y.Label.Text = "count"
	p.Add(h)
	return savePlot(p, 6*vg.Inch, 4*vg.Inch, path)
}

// CorrelationMatrix returns the pairwise Pearson correlation of the columns,
// computed over rows where both values are present.
func CorrelationMatrix(f *data.Frame, columns []string) ([][]float64, error) {
	cols := make([][]float64, len(columns))
	for k, name := range columns {
		c, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		cols[k] = c
	}
	m := make([][]float64, len(columns))
	for i := range m {
		m[i] = make([]float64, len(columns))
	}
	for i := range cols {
		for j := i; j < len(cols); j++ {
			x, y := pairwise(cols[i], cols[j])
			r := stat.Correlation(x, y, nil)
			if !math.IsNaN(r) {
				r = math.Max(-1, math.Min(1, r))
			}
			m[i][j], m[j][i] = r, r
		}
	}
	return m, nil
}

func pairwise(a, b []float64) (x, y []float64) {
	for i := range a {
		if finite(a[i]) && finite(b[i]) {
			x = append(x, a[i])
			y = append(y, b[i])
		}
	}
	return x, y
}

// corrGrid adapts a square correlation matrix to plotter.GridXYZ. Row 0 is
// drawn at the top.
type corrGrid [][]float64

func (g corrGrid) Dims() (c, r int)   { return len(g), len(g) }
func (g corrGrid) Z(c, r int) float64 { return g[len(g)-1-r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatmap draws the correlation matrix of the columns on a fixed
// [-1, 1] blue to red scale.
func CorrelationHeatmap(f *data.Frame, columns []string, path string) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	m, err := CorrelationMatrix(f, columns)
	if err != nil {
		return err
	}
	hm := plotter.NewHeatMap(corrGrid(m), moreland.SmoothBlueRed().Palette(255))
	hm.Min, hm.Max = -1, 1

	p := plot.New()
	p.Title.Text = "Correlation"
	p.Add(hm)
	p.NominalX(columns...)
	reversed := make([]string, len(columns))
	for i, c := range columns {
		reversed[len(columns)-1-i] = c
	}
	p.NominalY(reversed...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = -1

	side := vg.Length(len(columns))*0.4*vg.Inch + 2*vg.Inch
	return savePlot(p, side, side, path)
}
