package rul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

func runs(t *testing.T, lengths ...int) *data.Frame {
	t.Helper()
	var rows [][]float64
	for e, n := range lengths {
		for c := 1; c <= n; c++ {
			rows = append(rows, []float64{float64(e + 1), float64(c), float64(100 + c)})
		}
	}
	f, err := data.FromRows([]string{data.EngineColumn, data.CycleColumn, "T2"}, rows)
	require.NoError(t, err)
	return f
}

func truth(t *testing.T, values ...float64) *data.Frame {
	t.Helper()
	f, err := data.NewFrame([]string{data.RULColumn}, [][]float64{values})
	require.NoError(t, err)
	return f
}

func label(t *testing.T, f *data.Frame) []float64 {
	t.Helper()
	col, err := f.Col(data.RULColumn)
	require.NoError(t, err)
	return col
}

func TestTrain_Scenario(t *testing.T) {
	d := NewDeriver(nil)
	out, err := d.Train(runs(t, 5, 3))
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 3, 2, 1, 0, 2, 1, 0}, label(t, out))
	assert.Equal(t, data.RULColumn, out.Columns()[out.Width()-1])
	assert.NoError(t, Validate(out, DefaultColumns, true))
}

func TestTest_Scenario(t *testing.T) {
	d := NewDeriver(nil)
	out, err := d.Test(runs(t, 3, 2), truth(t, 10, 5))
	require.NoError(t, err)

	assert.Equal(t, []float64{12, 11, 10, 6, 5}, label(t, out))
	assert.NoError(t, Validate(out, DefaultColumns, false))
}

func TestTrain_UnsortedRows(t *testing.T) {
	f, err := data.FromRows([]string{data.EngineColumn, data.CycleColumn}, [][]float64{
		{2, 2}, {1, 3}, {2, 1}, {1, 1}, {1, 2},
	})
	require.NoError(t, err)

	out, err := NewDeriver(nil).Train(f)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 2, 1}, label(t, out))
}

func TestTest_EntityWithoutTruth(t *testing.T) {
	_, err := NewDeriver(nil).Test(runs(t, 2, 2, 2), truth(t, 10, 5))
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestTrain_MissingColumn(t *testing.T) {
	f, err := data.FromRows([]string{data.EngineColumn}, [][]float64{{1}})
	require.NoError(t, err)
	_, err = NewDeriver(nil).Train(f)
	assert.ErrorIs(t, err, data.ErrColumnNotFound)
}

func TestExtract(t *testing.T) {
	c := data.NewCollection()
	c.Put("train_FD001", runs(t, 5, 3))
	c.Put("test_FD001", runs(t, 3, 2))
	c.Put("RUL_FD001", truth(t, 10, 5))

	d := NewDeriver(nil)
	d.Sets = []int{1}
	require.NoError(t, d.Extract(c))

	assert.Equal(t, []string{"test_FD001", "train_FD001"}, c.Names())
	train, _ := c.Get("train_FD001")
	assert.Equal(t, []float64{4, 3, 2, 1, 0, 2, 1, 0}, label(t, train))
	test, _ := c.Get("test_FD001")
	assert.Equal(t, []float64{12, 11, 10, 6, 5}, label(t, test))
}

func TestExtract_MissingSet(t *testing.T) {
	c := data.NewCollection()
	c.Put("train_FD001", runs(t, 2))
	c.Put("test_FD001", runs(t, 1))
	c.Put("RUL_FD001", truth(t, 3))

	err := NewDeriver(nil).Extract(c)
	require.ErrorIs(t, err, data.ErrDatasetNotFound)
	assert.Contains(t, err.Error(), "train_FD002")

	// set 1 was applied before set 2 failed
	assert.False(t, c.Has("RUL_FD001"))
}

func TestValidate_Rejects(t *testing.T) {
	f, err := data.FromRows([]string{data.EngineColumn, data.CycleColumn, data.RULColumn}, [][]float64{
		{1, 1, 1}, {1, 2, 2},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(f, DefaultColumns, false), ErrInvalidLabel)

	f, err = data.FromRows([]string{data.EngineColumn, data.CycleColumn, data.RULColumn}, [][]float64{
		{1, 1, 2}, {1, 2, 1},
	})
	require.NoError(t, err)
	assert.NoError(t, Validate(f, DefaultColumns, false))
	assert.ErrorIs(t, Validate(f, DefaultColumns, true), ErrInvalidLabel)
}
