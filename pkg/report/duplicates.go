package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

var rule = strings.Repeat("-", 50)

// Duplicates returns the rows that repeat an earlier row across all columns,
// in their original order. The first occurrence is not included.
func Duplicates(f *data.Frame) *data.Frame {
	seen := make(map[string]struct{}, f.Len())
	var dups [][]float64
	var b strings.Builder
	for i := 0; i < f.Len(); i++ {
		row := f.Row(i)
		b.Reset()
		for _, v := range row {
			// bit patterns make NaN equal to NaN, like the tabular convention
			b.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
			b.WriteByte(',')
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			dups = append(dups, row)
			continue
		}
		seen[key] = struct{}{}
	}
	out, _ := data.FromRows(f.Columns(), dups)
	return out
}

// DuplicateRows reports duplicated rows for every dataset and writes a recap
// per dataset to w when it is not nil.
func DuplicateRows(c *data.Collection, w io.Writer) map[string]*data.Frame {
	out := make(map[string]*data.Frame, c.Len())
	for _, name := range c.Names() {
		f, _ := c.Get(name)
		d := Duplicates(f)
		out[name] = d
		if w != nil {
			fmt.Fprintf(w, "%s\n%s\n", rule, rule)
			fmt.Fprintf(w, "\n%s has %d duplicated rows.\n\n", name, d.Len())
		}
	}
	return out
}
