package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"primebench/benchmark"
	"primebench/config"
	"primebench/report"
	"primebench/sweep"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "primebench",
	Short: "Benchmark an external prime-counting workload across input sizes and thread counts",
	Long: `primebench drives a prime-counting executable (<workload> <size> <threads>)
over a grid of input sizes and thread counts, averages repeated trials per
cell, derives speedups against each size's single-thread baseline, and writes
CSVs, charts and a summary table image into a timestamped output directory.`,
	Version:      config.Main_version,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./primebench.yaml)")
	rootCmd.Flags().String("workload", "./pprimes", "path to the workload executable")
	rootCmd.Flags().Int("trials", 3, "trials per (size, threads) cell")
	rootCmd.Flags().Int("timeout_sec", 3600, "per-invocation timeout in seconds")
	rootCmd.Flags().String("out_root", "trial_data", "root directory for run artifacts")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	workload := &sweep.ExecWorkload{Path: cfg.Workload, Timeout: cfg.Timeout}
	if err := workload.Check(); err != nil {
		logger.Error("workload unavailable", "error", err)
		return err
	}

	writer, err := report.NewWriter(cfg.OutRoot, logger)
	if err != nil {
		return err
	}

	runner := &sweep.Runner{
		Workload: workload,
		DumpDir:  writer.Dir,
		Name:     strings.TrimSuffix(filepath.Base(cfg.Workload), filepath.Ext(cfg.Workload)),
	}
	agg := &sweep.Aggregator{Runner: runner, Logger: logger}

	return benchmark.Run("pprimes sweep", logger, func() error {
		rs := agg.Run(cmd.Context(), sweep.Config{
			Sizes:   cfg.Sizes,
			Threads: cfg.Threads,
			Trials:  cfg.Trials,
		})
		if err := writer.WriteAll(rs); err != nil {
			return err
		}
		logger.Info("artifacts written", "dir", writer.Dir)
		return nil
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
