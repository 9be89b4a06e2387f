package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/report"
)

var (
	reportInput    string
	reportWorkbook string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report missing values, duplicated rows and summary statistics",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "CSV directory (default data.interim_dir)")
	reportCmd.Flags().StringVar(&reportWorkbook, "workbook", "", "xlsx export path (default reports.workbook)")
}

func runReport(cmd *cobra.Command, args []string) error {
	dir := reportInput
	if dir == "" {
		dir = cfg.Data.InterimDir
	}
	c, err := data.LoadCSV(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.MissingValues(c, out)
	report.DuplicateRows(c, out)

	path := reportWorkbook
	if path == "" {
		path = cfg.Reports.Workbook
	}
	if path == "" {
		return nil
	}
	if err := report.WriteWorkbook(path, report.Build(c)); err != nil {
		return err
	}
	logger.Info("workbook written", zap.String("path", path), zap.Int("datasets", c.Len()))
	return nil
}
