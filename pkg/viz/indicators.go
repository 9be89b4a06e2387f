package viz

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

// ScatterIndicators draws one panel per indicator with the cycle on the x
// axis. Each engine gets its own colour on a blue to red scale.
func ScatterIndicators(f *data.Frame, title string, indicators []string, path string) error {
	groups, err := data.GroupRows(f, data.EngineColumn, data.CycleColumn)
	if err != nil {
		return err
	}
	cycles, _ := f.Col(data.CycleColumn)
	colors := blueRed(len(groups))

	plots := make([]*plot.Plot, 0, len(indicators))
	for k, name := range indicators {
		vals, err := f.Col(name)
		if err != nil {
			return err
		}
		p := plot.New()
		if k == 0 {
			p.Title.Text = title
		}
		p.X.Label.Text = data.CycleColumn
		p.Y.Label.Text = name
		for g, grp := range groups {
			pts := make(plotter.XYs, 0, len(grp.Rows))
			for _, i := range grp.Rows {
				if finite(cycles[i]) && finite(vals[i]) {
					pts = append(pts, plotter.XY{X: cycles[i], Y: vals[i]})
				}
			}
			if len(pts) == 0 {
				continue
			}
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			s.GlyphStyle.Color = colors[g]
			s.GlyphStyle.Radius = vg.Points(1)
			p.Add(s)
		}
		plots = append(plots, p)
	}
	return savePanels(plots, path)
}

// CycleStats holds the spread of an indicator across engines at one cycle.
type CycleStats struct {
	Cycle          float64
	Min, Mean, Max float64
}

// ByCycle aggregates an indicator per cycle, ignoring NaN readings. Cycles
// with no reading are left out. The result is sorted by cycle.
func ByCycle(f *data.Frame, column string) ([]CycleStats, error) {
	groups, err := data.GroupRows(f, data.CycleColumn, data.CycleColumn)
	if err != nil {
		return nil, err
	}
	vals, err := f.Col(column)
	if err != nil {
		return nil, err
	}
	out := make([]CycleStats, 0, len(groups))
	for _, g := range groups {
		cs := CycleStats{Cycle: g.Key, Min: math.Inf(1), Max: math.Inf(-1)}
		n := 0
		for _, i := range g.Rows {
			v := vals[i]
			if math.IsNaN(v) {
				continue
			}
			cs.Min = math.Min(cs.Min, v)
			cs.Max = math.Max(cs.Max, v)
			cs.Mean += v
			n++
		}
		if n == 0 {
			continue
		}
		cs.Mean /= float64(n)
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cycle < out[j].Cycle })
	return out, nil
}

var (
	bandColor = color.RGBA{R: 100, G: 149, B: 237, A: 80}
	meanColor = color.RGBA{R: 25, G: 25, B: 112, A: 255}
)

// LineIndicators draws one panel per indicator with the per-cycle mean as a
// line over a shaded band between the per-cycle min and max.
func LineIndicators(f *data.Frame, title string, indicators []string, path string) error {
	plots := make([]*plot.Plot, 0, len(indicators))
	for k, name := range indicators {
		cs, err := ByCycle(f, name)
		if err != nil {
			return err
		}
		p := plot.New()
		if k == 0 {
			p.Title.Text = title
		}
		p.X.Label.Text = data.CycleColumn
		p.Y.Label.Text = name
		if len(cs) > 0 {
			if err := addBand(p, cs); err != nil {
				return err
			}
		}
		plots = append(plots, p)
	}
	return savePanels(plots, path)
}

func addBand(p *plot.Plot, cs []CycleStats) error {
	band := make(plotter.XYs, 0, 2*len(cs))
	mean := make(plotter.XYs, len(cs))
	for i, c := range cs {
		band = append(band, plotter.XY{X: c.Cycle, Y: c.Max})
		mean[i] = plotter.XY{X: c.Cycle, Y: c.Mean}
	}
	for i := len(cs) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: cs[i].Cycle, Y: cs[i].Min})
	}

	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = bandColor
	poly.LineStyle.Width = 0
	line, err := plotter.NewLine(mean)
	if err != nil {
		return err
	}
	line.LineStyle.Color = meanColor
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(poly, line)
	p.Legend.Add("mean", line)
	p.Legend.Add("min-max", poly)
	p.Legend.Top = true
	return nil
}
