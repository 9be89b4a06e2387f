package report

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

func collection(t *testing.T) *data.Collection {
	t.Helper()
	nan := math.NaN()
	train, err := data.FromRows([]string{"a", "b", "c"}, [][]float64{
		{1, nan, 3},
		{1, nan, 3},
		{2, 5, nan},
		{1, nan, 3},
	})
	require.NoError(t, err)
	clean, err := data.FromRows([]string{"x"}, [][]float64{{1}, {2}, {3}, {4}})
	require.NoError(t, err)

	c := data.NewCollection()
	c.Put("train_FD001", train)
	c.Put("test_FD001", clean)
	return c
}

func TestMissing(t *testing.T) {
	c := collection(t)
	f, _ := c.Get("train_FD001")

	table := Missing(f)
	require.Len(t, table, 2)
	assert.Equal(t, MissingColumn{Column: "b", Missing: 3, Percent: 75}, table[0])
	assert.Equal(t, MissingColumn{Column: "c", Missing: 1, Percent: 25}, table[1])
}

func TestMissing_Rounding(t *testing.T) {
	f, err := data.FromRows([]string{"a"}, [][]float64{{math.NaN()}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 33.33, Missing(f)[0].Percent)
}

func TestMissingValues_Recap(t *testing.T) {
	var out bytes.Buffer
	got := MissingValues(collection(t), &out)

	assert.Empty(t, got["test_FD001"])
	assert.Len(t, got["train_FD001"], 2)
	assert.Contains(t, out.String(), "train_FD001 has 3 columns.\nThere are 2 columns that have missing values.")
	assert.Contains(t, out.String(), "test_FD001 has 1 columns.\nThere are 0 columns")
}

func TestDuplicates(t *testing.T) {
	c := collection(t)
	var out bytes.Buffer
	got := DuplicateRows(c, &out)

	d := got["train_FD001"]
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"a", "b", "c"}, d.Columns())
	assert.Equal(t, 0, got["test_FD001"].Len())
	assert.Contains(t, out.String(), "train_FD001 has 2 duplicated rows.")
}

func TestDescribe(t *testing.T) {
	f, err := data.FromRows([]string{"a", "b"}, [][]float64{{1, math.NaN()}, {2, 7}, {3, math.NaN()}, {4, math.NaN()}})
	require.NoError(t, err)

	s := Describe(f)
	require.Len(t, s, 2)
	a := s[0]
	assert.Equal(t, "a", a.Column)
	assert.Equal(t, 4, a.Count)
	assert.Equal(t, 2.5, a.Mean)
	assert.InDelta(t, 1.2909944, a.Std, 1e-6)
	assert.Equal(t, 1.0, a.Min)
	assert.Equal(t, 1.75, a.Q25)
	assert.Equal(t, 2.5, a.Median)
	assert.Equal(t, 3.25, a.Q75)
	assert.Equal(t, 4.0, a.Max)

	assert.Equal(t, 1, s[1].Count)
	assert.Equal(t, 7.0, s[1].Max)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(path, Build(collection(t))))

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.GetSheetList()
	assert.Contains(t, sheets, "missing_train_FD001")
	assert.Contains(t, sheets, "dups_train_FD001")
	assert.Contains(t, sheets, "describe_test_FD001")
	assert.NotContains(t, sheets, "Sheet1")

	rows, err := wb.GetRows("missing_train_FD001")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"b", "3", "75"}, rows[1])
}
