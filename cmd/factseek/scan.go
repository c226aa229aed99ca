// Scan command: runs the PF and/or BF searches and emits results.
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/factseek/internal/csvout"
	"github.com/mesh-intelligence/factseek/internal/sqlite"
	"github.com/mesh-intelligence/factseek/pkg/factorial"
	"github.com/mesh-intelligence/factseek/pkg/search"
	"github.com/mesh-intelligence/factseek/pkg/types"
)

// Scan flag values.
var (
	flagMode      string
	flagNMax      int
	flagNoTrivial bool
	flagNoPFF3    bool
	flagStore     string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for PF and BF factorial solutions",
	Long: `Scan enumerates all (n, r) with 0 <= n <= nmax and 0 <= r <= n,
testing nPr (mode pf) and/or C(n,r) (mode bf) for exact factorial
membership. One CSV file is written per mode:

  pf_solutions_nmax<N>.csv
  bf_solutions_nmax<N>.csv

With --store, results are additionally persisted to a SQLite database
that accumulates runs for cross-run queries.

Runtime is dominated by exact big-integer arithmetic; values reach
hundreds of digits near the default nmax of 500.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagMode, "mode", "both", "which search to run: pf, bf, or both")
	scanCmd.Flags().IntVar(&flagNMax, "nmax", 500, "inclusive upper bound on n")
	scanCmd.Flags().BoolVar(&flagNoTrivial, "no-trivial", false, "suppress records classified trivial")
	scanCmd.Flags().BoolVar(&flagNoPFF3, "no-pf-f3", false, "suppress records classified PF_F3")
	scanCmd.Flags().StringVar(&flagStore, "store", "", "SQLite results database path (default: store_path from config)")
}

func runScan(cmd *cobra.Command, args []string) error {
	outDir, err := resolveOutDir()
	if err != nil {
		return fmt.Errorf("resolve output dir: %w", err)
	}

	cfg := types.ScanConfig{
		Mode:           types.Mode(flagMode),
		NMax:           flagNMax,
		IncludeTrivial: !flagNoTrivial,
		IncludePFF3:    !flagNoPFF3,
		OutDir:         outDir,
		StorePath:      resolveStorePath(),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	run := types.Run{
		RunID:          uuid.NewString(),
		Mode:           cfg.Mode,
		NMax:           cfg.NMax,
		IncludeTrivial: cfg.IncludeTrivial,
		IncludePFF3:    cfg.IncludePFF3,
		CreatedAt:      time.Now(),
	}

	var store *sqlite.Store
	if cfg.StorePath != "" {
		store, err = sqlite.Open(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("open results store: %w", err)
		}
		defer store.Close()
		if err := store.RecordRun(run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"mode":   cfg.Mode,
		"nmax":   cfg.NMax,
	}).Info("scan started")

	// Both searches share one factorial table; it only ever grows.
	facts := factorial.NewTable()

	if cfg.RunsPF() {
		if err := scanPF(facts, cfg, run, store); err != nil {
			return err
		}
	}
	if cfg.RunsBF() {
		if err := scanBF(facts, cfg, run, store); err != nil {
			return err
		}
	}
	return nil
}

func scanPF(facts *factorial.Table, cfg types.ScanConfig, run types.Run, store *sqlite.Store) error {
	start := time.Now()
	rows := search.SearchPF(facts, cfg)

	path := csvout.PFPath(cfg.OutDir, cfg.NMax)
	if err := csvout.Write(path, rows); err != nil {
		return fmt.Errorf("write pf csv: %w", err)
	}
	if store != nil {
		if err := store.SavePF(run.RunID, rows); err != nil {
			return fmt.Errorf("store pf rows: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id":  run.RunID,
		"rows":    len(rows),
		"path":    path,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("pf scan complete")
	return nil
}

func scanBF(facts *factorial.Table, cfg types.ScanConfig, run types.Run, store *sqlite.Store) error {
	start := time.Now()
	rows := search.SearchBF(facts, cfg)

	path := csvout.BFPath(cfg.OutDir, cfg.NMax)
	if err := csvout.Write(path, rows); err != nil {
		return fmt.Errorf("write bf csv: %w", err)
	}
	if store != nil {
		if err := store.SaveBF(run.RunID, rows); err != nil {
			return fmt.Errorf("store bf rows: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id":  run.RunID,
		"rows":    len(rows),
		"path":    path,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("bf scan complete")
	return nil
}

// resolveStorePath returns the results database path following the
// precedence: --store flag > config.yaml store_path. Empty disables the store.
func resolveStorePath() string {
	if flagStore != "" {
		return flagStore
	}
	return configStorePath
}
