package dataprep

import (
	"math"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/pipeline"
)

// Derived column names.
const (
	DNf             = "DNf"
	DNRf            = "DNRf"
	P50             = "P50"
	ExpandMaxSuffix = "_expandmax"
)

// DefaultExpandColumns are the temperature and pressure sensors that get an
// expanding-max trend feature. P50 must be added before it is expanded.
var DefaultExpandColumns = []string{"T2", "T24", "T30", "T50", "P2", "P15", "P30", "Ps30", P50}

// AddDNf adds the fan speed gap between demand and actual (Nf_dmd - Nf).
func AddDNf(f *data.Frame) (*data.Frame, error) {
	return binary(f, DNf, "Nf_dmd", "Nf", func(a, b float64) float64 { return a - b })
}

// AddDNRf adds the corrected fan speed gap (PCNfR_dmd - NRf).
func AddDNRf(f *data.Frame) (*data.Frame, error) {
	return binary(f, DNRf, "PCNfR_dmd", "NRf", func(a, b float64) float64 { return a - b })
}

// AddP50 adds the derived core nozzle outlet pressure (P2 * epr).
func AddP50(f *data.Frame) (*data.Frame, error) {
	return binary(f, P50, "P2", "epr", func(a, b float64) float64 { return a * b })
}

func binary(f *data.Frame, name, left, right string, op func(a, b float64) float64) (*data.Frame, error) {
	a, err := f.Col(left)
	if err != nil {
		return nil, err
	}
	b, err := f.Col(right)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return f.WithColumn(name, out)
}

// AddExpandMax adds <column>_expandmax: for every row, the maximum of column
// over the entity's rows up to and including that cycle. NaN values are
// skipped; the feature stays NaN until the first observed value.
func AddExpandMax(f *data.Frame, column string) (*data.Frame, error) {
	vals, err := f.Col(column)
	if err != nil {
		return nil, err
	}
	groups, err := data.GroupRows(f, data.EngineColumn, data.CycleColumn)
	if err != nil {
		return nil, err
	}
	out := make([]float64, f.Len())
	for _, g := range groups {
		running := math.NaN()
		for _, i := range g.Rows {
			if v := vals[i]; !math.IsNaN(v) && (math.IsNaN(running) || v > running) {
				running = v
			}
			out[i] = running
		}
	}
	return f.WithColumn(column+ExpandMaxSuffix, out)
}

// ExpandMax returns a pipeline step adding the expanding max of column.
func ExpandMax(column string) pipeline.Step {
	return func(f *data.Frame) (*data.Frame, error) { return AddExpandMax(f, column) }
}

// Features returns the feature extraction pipeline: DNf, DNRf, P50, then one
// expanding max per column in order. No columns means DefaultExpandColumns.
func Features(columns ...string) *pipeline.Pipeline {
	if len(columns) == 0 {
		columns = DefaultExpandColumns
	}
	p := pipeline.NewPipeline(AddDNf, AddDNRf, AddP50)
	for _, c := range columns {
		p.Then(ExpandMax(c))
	}
	return p
}

// Extract runs the feature pipeline on one frame.
func Extract(f *data.Frame, columns ...string) (*data.Frame, error) {
	return Features(columns...).Run(f)
}
