package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := FromRows([]string{EngineColumn, CycleColumn, "T2"}, [][]float64{
		{1, 1, 10},
		{1, 2, 12},
		{2, 1, 7},
	})
	require.NoError(t, err)
	return f
}

func TestFromRows(t *testing.T) {
	f := sampleFrame(t)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, []float64{1, 2, 12}, f.Row(1))

	col, err := f.Col("T2")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12, 7}, col)
}

func TestFromRows_LengthMismatch(t *testing.T) {
	_, err := FromRows([]string{"a", "b"}, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewFrame_DuplicateColumn(t *testing.T) {
	_, err := NewFrame([]string{"a", "a"}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestCol_Missing(t *testing.T) {
	_, err := sampleFrame(t).Col("nope")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestWithColumn_AppendsWithoutMutating(t *testing.T) {
	f := sampleFrame(t)
	g, err := f.WithColumn("x", []float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []string{EngineColumn, CycleColumn, "T2", "x"}, g.Columns())
	assert.Equal(t, 3, f.Width())
	assert.False(t, f.Has("x"))
}

func TestWithColumn_ReplacesInPlace(t *testing.T) {
	f := sampleFrame(t)
	g, err := f.WithColumn(CycleColumn, []float64{9, 9, 9})
	require.NoError(t, err)

	assert.Equal(t, f.Columns(), g.Columns())
	col, _ := g.Col(CycleColumn)
	assert.Equal(t, []float64{9, 9, 9}, col)
	orig, _ := f.Col(CycleColumn)
	assert.Equal(t, []float64{1, 2, 1}, orig)
}

func TestWithColumn_WrongLength(t *testing.T) {
	_, err := sampleFrame(t).WithColumn("x", []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSelectDropMatrix(t *testing.T) {
	f := sampleFrame(t)

	s, err := f.Select("T2", EngineColumn)
	require.NoError(t, err)
	assert.Equal(t, []string{"T2", EngineColumn}, s.Columns())

	d := f.Drop(EngineColumn, "unknown")
	assert.Equal(t, []string{CycleColumn, "T2"}, d.Columns())

	X, err := f.Matrix([]string{"T2", CycleColumn})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10, 1}, {12, 2}, {7, 1}}, X)

	_, err = f.Matrix([]string{"zz"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestGroupRows_SortsByOrder(t *testing.T) {
	f, err := FromRows([]string{EngineColumn, CycleColumn}, [][]float64{
		{2, 2}, {1, 3}, {2, 1}, {1, 1}, {1, 2},
	})
	require.NoError(t, err)

	groups, err := GroupRows(f, EngineColumn, CycleColumn)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, Group{Key: 2, Rows: []int{2, 0}}, groups[0])
	assert.Equal(t, Group{Key: 1, Rows: []int{3, 4, 1}}, groups[1])
}

func TestGroupMax(t *testing.T) {
	f, err := FromRows([]string{EngineColumn, CycleColumn}, [][]float64{
		{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2},
	})
	require.NoError(t, err)

	m, err := GroupMax(f, EngineColumn, CycleColumn)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 2, 2}, m)
}

func TestGroupRows_RejectsNaN(t *testing.T) {
	nan := math.NaN()
	f, err := FromRows([]string{EngineColumn, CycleColumn}, [][]float64{{1, 1}, {1, nan}, {1, 2}})
	require.NoError(t, err)
	_, err = GroupRows(f, EngineColumn, CycleColumn)
	assert.ErrorIs(t, err, ErrMissingKey)

	g, err := FromRows([]string{EngineColumn, CycleColumn}, [][]float64{{nan, 1}, {nan, 2}})
	require.NoError(t, err)
	_, err = GroupRows(g, EngineColumn, CycleColumn)
	assert.ErrorIs(t, err, ErrMissingKey)
	_, err = GroupMax(g, EngineColumn, CycleColumn)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestGroupMax_IgnoresNaNValues(t *testing.T) {
	f, err := FromRows([]string{EngineColumn, CycleColumn}, [][]float64{{1, 1}, {1, math.NaN()}, {1, 4}, {2, 2}})
	require.NoError(t, err)
	m, err := GroupMax(f, EngineColumn, CycleColumn)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 2}, m)
}

func TestCollection(t *testing.T) {
	c := NewCollection()
	f := sampleFrame(t)
	c.Put("train_FD001", f)
	c.Put("RUL_FD001", f)

	assert.Equal(t, []string{"RUL_FD001", "train_FD001"}, c.Names())
	got, err := c.Get("train_FD001")
	require.NoError(t, err)
	assert.Same(t, f, got)

	require.NoError(t, c.Remove("RUL_FD001"))
	assert.False(t, c.Has("RUL_FD001"))
	assert.Equal(t, 1, c.Len())

	_, err = c.Get("RUL_FD001")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	assert.ErrorIs(t, c.Remove("RUL_FD001"), ErrDatasetNotFound)
}

func TestDatasetName(t *testing.T) {
	assert.Equal(t, "train_FD001", DatasetName(RoleTrain, 1))
	assert.Equal(t, "RUL_FD004", DatasetName(RoleRUL, 4))
}
