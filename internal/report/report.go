// Package report runs table computations and persists their results as CSV
// files. Persistence is an explicit wrapper around an I/O-free compute
// function, invoked only by callers that asked for a file.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/svodka-dev/svodka/internal/importer"
	"github.com/svodka-dev/svodka/internal/model"
)

// ComputeFunc produces a transaction table. Compute functions never touch
// the filesystem themselves.
type ComputeFunc func() ([]model.Transaction, error)

// defaultNameFormat is the timestamp part of generated report names.
const defaultNameFormat = "20060102_150405"

// DefaultPath returns "<dir>/<timestamp>_<op>_report.csv" for reports
// written without an explicit target.
func DefaultPath(dir, op string, now time.Time) string {
	name := fmt.Sprintf("%s_%s_report.csv", now.Format(defaultNameFormat), op)
	return filepath.Join(dir, name)
}

// Run executes fn and streams the resulting table to w as CSV. The table is
// returned so callers can keep using it in memory.
func Run(fn ComputeFunc, w io.Writer) ([]model.Transaction, error) {
	txns, err := fn()
	if err != nil {
		return nil, err
	}
	if err := importer.Write(w, txns); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return txns, nil
}

// RunToFile executes fn and writes the result to path, creating parent
// directories as needed. Nothing is written when fn fails.
func RunToFile(fn ComputeFunc, path string) ([]model.Transaction, error) {
	txns, err := fn()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := importer.Write(f, txns); err != nil {
		return nil, fmt.Errorf("writing report %s: %w", path, err)
	}
	return txns, nil
}
