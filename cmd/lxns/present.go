package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AiwenorAnga/lxns/internal/config"
	"github.com/AiwenorAnga/lxns/internal/logger"
	"github.com/AiwenorAnga/lxns/internal/present"
)

var (
	presentConfigPath string
	presentDataDir    string
	presentOut        string
	presentSmooth     bool
)

var presentCmd = &cobra.Command{
	Use:   "present [record files...]",
	Short: "Render persisted trajectories as an HTML chart",
	Long:  "present reads trajectory records written by the track command and renders them as an HTML line chart. Without arguments it picks up every record in the data directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(presentConfigPath)
		if err != nil {
			return err
		}
		if presentDataDir != "" {
			cfg.DataDir = presentDataDir
		}
		if presentOut != "" {
			cfg.ChartOut = presentOut
		}
		if presentSmooth {
			cfg.Smooth = true
		}
		log := logger.New(slog.LevelInfo)

		paths := args
		if len(paths) == 0 {
			paths, err = present.Discover(cfg.DataDir)
			if err != nil {
				return err
			}
		}
		if len(paths) == 0 {
			return errors.Errorf("no record files found in %s", cfg.DataDir)
		}

		records, errs := present.Load(paths)
		for _, err := range errs {
			log.Error("record skipped", logger.Err(err))
		}
		if len(records) == 0 {
			return errors.New("no readable record files")
		}

		chart := present.Chart(records, present.Options{Smooth: cfg.Smooth})
		if err := present.Render(chart, cfg.ChartOut); err != nil {
			return err
		}
		log.Info("chart written",
			logger.String("path", cfg.ChartOut),
			logger.Int("series", len(records)))
		return nil
	},
}

func init() {
	presentCmd.Flags().StringVar(&presentConfigPath, "config", "", "Path to YAML configuration")
	presentCmd.Flags().StringVar(&presentDataDir, "data-dir", "", "Directory holding trajectory records (overrides config)")
	presentCmd.Flags().StringVar(&presentOut, "out", "", "Output HTML file (overrides config)")
	presentCmd.Flags().BoolVar(&presentSmooth, "smooth", false, "Overlay Kalman-smoothed paths")
}
