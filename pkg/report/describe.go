package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

// Summary holds descriptive statistics of one column, NaN excluded. Std is
// the sample standard deviation.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes every column of the frame in column order.
func Describe(f *data.Frame) []Summary {
	out := make([]Summary, 0, f.Width())
	for _, name := range f.Columns() {
		col, _ := f.Col(name)
		x := stats.DropNaN(col)
		s := Summary{Column: name, Count: len(x)}
		if len(x) > 0 {
			s.Mean, s.Std = stat.MeanStdDev(x, nil)
			s.Min, s.Max = floats.Min(x), floats.Max(x)
			s.Q25 = stats.Percentile(x, 25)
			s.Median = stats.Median(x)
			s.Q75 = stats.Percentile(x, 75)
		}
		out = append(out, s)
	}
	return out
}
