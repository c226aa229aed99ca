// Package csvout writes scan results as CSV tables with the header
// n,r,c,class, one file per search mode.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// header is shared by the PF and BF solution tables.
var header = []string{"n", "r", "c", "class"}

// PFPath returns the conventional PF output path for a scan bound.
func PFPath(outDir string, nMax int) string {
	return filepath.Join(outDir, fmt.Sprintf("pf_solutions_nmax%d.csv", nMax))
}

// BFPath returns the conventional BF output path for a scan bound.
func BFPath(outDir string, nMax int) string {
	return filepath.Join(outDir, fmt.Sprintf("bf_solutions_nmax%d.csv", nMax))
}

// rower is satisfied by both record types in pkg/types.
type rower interface {
	Row() []string
}

// Write creates path (and its directory if absent) and writes the header
// followed by one row per record, preserving record order.
func Write[T rower](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range rows {
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
