package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

func TestArtifactStore_Paths(t *testing.T) {
	s := ArtifactStore{Dir: "models"}
	assert.Equal(t, filepath.Join("models", "RobustScaler.gob"), s.ScalerPath(stats.Robust))
	assert.Equal(t, filepath.Join("models", "LinRegFD001.gob"), s.ModelPath("", "FD001"))
	assert.Equal(t, filepath.Join("models", "RidgeFD002.gob"), s.ModelPath("Ridge", "FD002"))
}

func TestArtifactStore_ScalerRoundTrip(t *testing.T) {
	s := ArtifactStore{Dir: filepath.Join(t.TempDir(), "scalers")}
	sc := &stats.MinMaxScaler{}
	require.NoError(t, sc.Fit([][]float64{{0, 10}, {2, 30}}))
	require.NoError(t, s.SaveScaler(sc, []string{"a", "b"}))

	back, cols, err := s.LoadScaler(stats.MinMax)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cols)

	got, err := back.Transform([][]float64{{1, 20}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0.5}}, got)
}

func TestArtifactStore_Missing(t *testing.T) {
	s := ArtifactStore{Dir: t.TempDir()}
	_, _, err := s.LoadScaler(stats.Robust)
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	var v struct{ W []float64 }
	assert.ErrorIs(t, s.LoadModel("", "FD001", &v), ErrArtifactNotFound)
}

func TestArtifactStore_ModelRoundTrip(t *testing.T) {
	type linReg struct {
		W []float64
		B float64
	}
	s := ArtifactStore{Dir: t.TempDir()}
	require.NoError(t, s.SaveModel(DefaultModelType, "FD003", linReg{W: []float64{0.5, -1}, B: 2}))

	var got linReg
	require.NoError(t, s.LoadModel(DefaultModelType, "FD003", &got))
	assert.Equal(t, linReg{W: []float64{0.5, -1}, B: 2}, got)
}
