// Package viz renders exploratory plots of sensor data to PNG files.
package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrNoColumns = errors.New("viz: no columns to plot")

const (
	panelWidth  = 12 * vg.Inch
	panelHeight = 3 * vg.Inch
)

// savePanels stacks the plots vertically on one PNG image.
func savePanels(plots []*plot.Plot, path string) error {
	if len(plots) == 0 {
		return ErrNoColumns
	}
	img := vgimg.New(panelWidth, panelHeight*vg.Length(len(plots)))
	dc := draw.New(img)

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(8),
	}
	canvases := plot.Align(grid, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}
	return writePNG(path, vgimg.PngCanvas{Canvas: img})
}

func savePlot(p *plot.Plot, w, h vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}
	return nil
}

func writePNG(path string, png vgimg.PngCanvas) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := png.WriteTo(fh); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return fh.Close()
}

// blueRed returns n colours running from blue to red.
func blueRed(n int) []color.Color {
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(0)
	cmap.SetMax(1)
	out := make([]color.Color, 0, n)
	for i := 0; i < n; i++ {
		v := 0.0
		if n > 1 {
			v = math.Min(1, float64(i)/float64(n-1))
		}
		c, err := cmap.At(v)
		if err != nil {
			c = color.Gray{Y: 128}
		}
		out = append(out, c)
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
