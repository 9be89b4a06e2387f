package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  development: true\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultRawDir, cfg.Data.RawDir)
	assert.Equal(t, DefaultExt, cfg.Data.Ext)
	assert.Equal(t, DefaultPrefix, cfg.Data.Prefix)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Data.Sets)
	assert.Len(t, cfg.Features.Expand, 9)
	assert.Equal(t, stats.Robust, cfg.Scaling.Kind)
	assert.Equal(t, WorkflowFit, cfg.Scaling.Workflow)
	assert.Equal(t, DefaultBins, cfg.Plots.Bins)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(writeConfig(t, `data:
  raw_dir: /data/cmapss
  ext: .dat
  sep: ","
  sets: [2, 4]
features:
  expand: [T24, T50]
scaling:
  kind: MinMax
  store_dir: /models
  workflow: apply
reports:
  workbook: out/report.xlsx
plots:
  indicators: [T24]
  bins: 20
`))
	require.NoError(t, err)

	assert.Equal(t, "/data/cmapss", cfg.Data.RawDir)
	assert.Equal(t, ",", cfg.Data.Sep)
	assert.Equal(t, []int{2, 4}, cfg.Data.Sets)
	assert.Equal(t, []string{"T24", "T50"}, cfg.Features.Expand)
	assert.Equal(t, stats.MinMax, cfg.Scaling.Kind)
	assert.Equal(t, WorkflowApply, cfg.Scaling.Workflow)
	assert.Equal(t, "out/report.xlsx", cfg.Reports.Workbook)
	assert.Equal(t, []string{"T24"}, cfg.Plots.Indicators)
	assert.Equal(t, 20, cfg.Plots.Bins)
	assert.Equal(t, DefaultInterimDir, cfg.Data.InterimDir)
}

func TestLoad_EmptyValuesRestored(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scaling:\n  kind: \"\"\n  workflow: \"\"\ndata:\n  sets: []\n"))
	require.NoError(t, err)
	assert.Equal(t, stats.Robust, cfg.Scaling.Kind)
	assert.Equal(t, WorkflowFit, cfg.Scaling.Workflow)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Data.Sets)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"kind":     "scaling:\n  kind: Quantile\n",
		"workflow": "scaling:\n  workflow: refit\n",
		"set":      "data:\n  sets: [0]\n",
		"bins":     "plots:\n  bins: -1\n",
		"raw dir":  "data:\n  raw_dir: \"\"\n",
		"yaml":     "data: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault_Independent(t *testing.T) {
	a := Default()
	a.Data.Sets[0] = 9
	a.Features.Expand[0] = "x"
	b := Default()
	assert.Equal(t, 1, b.Data.Sets[0])
	assert.Equal(t, "T2", b.Features.Expand[0])
}
