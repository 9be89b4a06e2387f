package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

// Report groups the per-dataset results of the reporting functions.
type Report struct {
	Missing    map[string]MissingTable
	Duplicates map[string]*data.Frame
	Summaries  map[string][]Summary
}

// Build runs every report over the collection without printing.
func Build(c *data.Collection) Report {
	r := Report{
		Missing:    MissingValues(c, nil),
		Duplicates: DuplicateRows(c, nil),
		Summaries:  make(map[string][]Summary, c.Len()),
	}
	for _, name := range c.Names() {
		f, _ := c.Get(name)
		r.Summaries[name] = Describe(f)
	}
	return r
}

// excelize caps sheet names at 31 characters.
const maxSheetName = 31

// WriteWorkbook exports the report to an xlsx file with one sheet per report
// kind and dataset.
func WriteWorkbook(path string, r Report) error {
	wb := excelize.NewFile()
	defer wb.Close()

	for _, name := range sortedKeys(r.Missing) {
		rows := [][]any{{"Column", "Missing Values", "% of Total Values"}}
		for _, m := range r.Missing[name] {
			rows = append(rows, []any{m.Column, m.Missing, m.Percent})
		}
		if err := writeSheet(wb, "missing_"+name, rows); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(r.Duplicates) {
		f := r.Duplicates[name]
		rows := [][]any{toAny(f.Columns())}
		for i := 0; i < f.Len(); i++ {
			rows = append(rows, floatsToAny(f.Row(i)))
		}
		if err := writeSheet(wb, "dups_"+name, rows); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(r.Summaries) {
		rows := [][]any{{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}}
		for _, s := range r.Summaries[name] {
			rows = append(rows, append([]any{s.Column, s.Count}, floatsToAny([]float64{s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max})...))
		}
		if err := writeSheet(wb, "describe_"+name, rows); err != nil {
			return err
		}
	}

	if len(wb.GetSheetList()) > 1 {
		if err := wb.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(wb *excelize.File, sheet string, rows [][]any) error {
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}
	if _, err := wb.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// floatsToAny leaves NaN cells empty; xlsx has no NaN number.
func floatsToAny(s []float64) []any {
	out := make([]any, len(s))
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = nil
			continue
		}
		out[i] = v
	}
	return out
}
