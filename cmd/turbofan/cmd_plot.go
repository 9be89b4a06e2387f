package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/config"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/viz"
)

var (
	plotInput    string
	plotDatasets []string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw indicator, distribution and correlation figures",
	Long: `For each dataset writes, under plots.dir:
  <name>_scatter.png   indicators against cycle, one colour per engine
  <name>_line.png      per-cycle mean with min-max band
  <name>_corr.png      correlation heatmap
  <name>_RUL_hist.png  RUL distribution, when the dataset is labelled`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotInput, "input", "", "CSV directory (default data.interim_dir)")
	plotCmd.Flags().StringSliceVar(&plotDatasets, "dataset", nil, "datasets to plot (default all)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	dir := plotInput
	if dir == "" {
		dir = cfg.Data.InterimDir
	}
	c, err := data.LoadCSV(dir)
	if err != nil {
		return err
	}
	names := plotDatasets
	if len(names) == 0 {
		names = c.Names()
	}
	for _, name := range names {
		f, err := c.Get(name)
		if err != nil {
			return err
		}
		if err := plotDataset(f, name, cfg.Plots); err != nil {
			return err
		}
		logger.Info("figures written", zap.String("dataset", name), zap.String("dir", cfg.Plots.Dir))
	}
	return nil
}

// indicators returns the configured indicators, or every column that is not
// an identifier or the label.
func indicators(f *data.Frame, configured []string) []string {
	if len(configured) > 0 {
		return configured
	}
	return f.Drop(data.EngineColumn, data.CycleColumn, data.RULColumn).Columns()
}

func plotDataset(f *data.Frame, name string, pc config.PlotsConfig) error {
	cols := indicators(f, pc.Indicators)
	path := func(suffix string) string { return filepath.Join(pc.Dir, name+"_"+suffix+".png") }

	if err := viz.ScatterIndicators(f, name, cols, path("scatter")); err != nil {
		return err
	}
	if err := viz.LineIndicators(f, name, cols, path("line")); err != nil {
		return err
	}
	if err := viz.CorrelationHeatmap(f, cols, path("corr")); err != nil {
		return err
	}
	if f.Has(data.RULColumn) {
		if err := viz.Histogram(f, data.RULColumn, pc.Bins, path("RUL_hist")); err != nil {
			return err
		}
	}
	return nil
}
