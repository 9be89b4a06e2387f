package data

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrMissingKey is returned when a grouping or ordering column holds NaN.
var ErrMissingKey = errors.New("data: missing group key")

// Group is the set of rows belonging to one entity.
type Group struct {
	Key  float64
	Rows []int
}

// GroupRows partitions the frame by the key column. Groups appear in order of
// first occurrence; rows inside a group are stably sorted by the order column.
// NaN in either column has no group or position and fails with ErrMissingKey.
func GroupRows(f *Frame, key, order string) ([]Group, error) {
	keys, err := f.Col(key)
	if err != nil {
		return nil, err
	}
	ord, err := f.Col(order)
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if math.IsNaN(keys[i]) {
			return nil, fmt.Errorf("%w: %s at row %d", ErrMissingKey, key, i)
		}
		if math.IsNaN(ord[i]) {
			return nil, fmt.Errorf("%w: %s at row %d", ErrMissingKey, order, i)
		}
	}

	pos := make(map[float64]int)
	var groups []Group
	for i, k := range keys {
		g, ok := pos[k]
		if !ok {
			g = len(groups)
			pos[k] = g
			groups = append(groups, Group{Key: k})
		}
		groups[g].Rows = append(groups[g].Rows, i)
	}
	for _, g := range groups {
		rows := g.Rows
		sort.SliceStable(rows, func(a, b int) bool { return ord[rows[a]] < ord[rows[b]] })
	}
	return groups, nil
}

// GroupMax returns, for every row, the maximum of col over the row's group.
// NaN values of col are ignored; a NaN key fails with ErrMissingKey.
func GroupMax(f *Frame, key, col string) ([]float64, error) {
	vals, err := f.Col(col)
	if err != nil {
		return nil, err
	}
	groups, err := GroupRows(f, key, key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, f.Len())
	for _, g := range groups {
		m := math.NaN()
		for _, i := range g.Rows {
			if v := vals[i]; !math.IsNaN(v) && (math.IsNaN(m) || v > m) {
				m = v
			}
		}
		for _, i := range g.Rows {
			out[i] = m
		}
	}
	return out, nil
}
