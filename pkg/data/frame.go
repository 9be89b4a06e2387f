package data

import (
	"errors"
	"fmt"
)

var (
	ErrColumnNotFound  = errors.New("data: column not found")
	ErrDuplicateColumn = errors.New("data: duplicate column")
	ErrLengthMismatch  = errors.New("data: column length mismatch")
)

// Frame is an ordered set of named numeric columns of equal length.
// Values are stored column-major; missing values are NaN.
type Frame struct {
	columns []string
	index   map[string]int
	values  [][]float64
	rows    int
}

// NewFrame builds a frame from column-major values. The slices are used as is.
func NewFrame(columns []string, values [][]float64) (*Frame, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrLengthMismatch, len(columns), len(values))
	}
	f := &Frame{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
		values:  make([][]float64, 0, len(columns)),
	}
	for j, name := range columns {
		if _, ok := f.index[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}
		if j == 0 {
			f.rows = len(values[j])
		} else if len(values[j]) != f.rows {
			return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrLengthMismatch, name, len(values[j]), f.rows)
		}
		f.index[name] = j
		f.columns = append(f.columns, name)
		f.values = append(f.values, values[j])
	}
	return f, nil
}

// FromRows builds a frame from row-major records.
func FromRows(columns []string, rows [][]float64) (*Frame, error) {
	values := make([][]float64, len(columns))
	for j := range columns {
		values[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrLengthMismatch, i, len(row), len(columns))
		}
		for j, v := range row {
			values[j][i] = v
		}
	}
	return NewFrame(columns, values)
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.columns) }

// Has reports whether the frame has a column with the given name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Col returns the values of a column. The slice is shared with the frame and
// must not be modified.
func (f *Frame) Col(name string) ([]float64, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return f.values[j], nil
}

// Row returns a copy of row i in column order.
func (f *Frame) Row(i int) []float64 {
	row := make([]float64, len(f.values))
	for j, col := range f.values {
		row[j] = col[i]
	}
	return row
}

// WithColumn returns a new frame with the column appended. A column that
// already exists keeps its position and gets the new values. The receiver is
// not modified.
func (f *Frame) WithColumn(name string, values []float64) (*Frame, error) {
	if len(f.columns) > 0 && len(values) != f.rows {
		return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrLengthMismatch, name, len(values), f.rows)
	}
	columns := f.Columns()
	cols := make([][]float64, len(f.values), len(f.values)+1)
	copy(cols, f.values)
	if j, ok := f.index[name]; ok {
		cols[j] = values
	} else {
		columns = append(columns, name)
		cols = append(cols, values)
	}
	return NewFrame(columns, cols)
}

// Select returns a frame holding the named columns in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([][]float64, len(names))
	for k, name := range names {
		col, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		cols[k] = col
	}
	return NewFrame(names, cols)
}

// Drop returns a frame without the named columns. Unknown names are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	skip := make(map[string]struct{}, len(names))
	for _, n := range names {
		skip[n] = struct{}{}
	}
	var keep []string
	for _, c := range f.columns {
		if _, ok := skip[c]; !ok {
			keep = append(keep, c)
		}
	}
	out, _ := f.Select(keep...)
	if out.Width() == 0 {
		out.rows = f.rows
	}
	return out
}

// Matrix copies the named columns into a row-major matrix.
func (f *Frame) Matrix(names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for k, name := range names {
		col, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		cols[k] = col
	}
	X := make([][]float64, f.rows)
	for i := 0; i < f.rows; i++ {
		row := make([]float64, len(cols))
		for k, col := range cols {
			row[k] = col[i]
		}
		X[i] = row
	}
	return X, nil
}
