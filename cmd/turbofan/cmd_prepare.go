package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Label raw data, then extract and scale features",
	Long: `Reads the raw directory, derives RUL for train and test, saves the
labelled datasets as interim CSVs, then runs feature extraction and scaling
and saves the result as processed CSVs.`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

func runPrepare(cmd *cobra.Command, args []string) error {
	c, err := loadRaw(cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	if err := label(c, cfg, logger); err != nil {
		return err
	}
	if err := data.SaveCSV(c, cfg.Data.InterimDir); err != nil {
		return err
	}
	logger.Info("interim data saved", zap.String("dir", cfg.Data.InterimDir), zap.Int("datasets", c.Len()))

	if err := featurizeAndScale(c, cfg, logger); err != nil {
		return err
	}
	if err := data.SaveCSV(c, cfg.Data.ProcessedDir); err != nil {
		return err
	}
	logger.Info("processed data saved", zap.String("dir", cfg.Data.ProcessedDir), zap.Int("datasets", c.Len()))
	return nil
}
