package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

// MissingColumn counts the missing values of one column.
type MissingColumn struct {
	Column  string
	Missing int
	Percent float64 // of total rows, rounded to 2 decimals
}

// MissingTable lists columns with at least one missing value, highest
// percentage first.
type MissingTable []MissingColumn

// Missing counts NaN values per column.
func Missing(f *data.Frame) MissingTable {
	var table MissingTable
	for _, name := range f.Columns() {
		col, _ := f.Col(name)
		n := 0
		for _, v := range col {
			if math.IsNaN(v) {
				n++
			}
		}
		if n == 0 {
			continue
		}
		pct := 100 * float64(n) / float64(f.Len())
		table = append(table, MissingColumn{Column: name, Missing: n, Percent: math.Round(pct*100) / 100})
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].Percent > table[j].Percent })
	return table
}

// MissingValues reports missing values for every dataset and writes a recap
// per dataset to w when it is not nil.
func MissingValues(c *data.Collection, w io.Writer) map[string]MissingTable {
	out := make(map[string]MissingTable, c.Len())
	for _, name := range c.Names() {
		f, _ := c.Get(name)
		table := Missing(f)
		out[name] = table
		if w == nil {
			continue
		}
		fmt.Fprintf(w, "%s\n%s\n", rule, rule)
		fmt.Fprintf(w, "\n%s has %d columns.\nThere are %d columns that have missing values.\n", name, f.Width(), len(table))
		for _, m := range table {
			fmt.Fprintf(w, "%-12s %8d %8.2f%%\n", m.Column, m.Missing, m.Percent)
		}
	}
	return out
}
