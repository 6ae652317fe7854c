// Package persist serializes report rows into a single output artifact.
package persist

import (
	"fmt"

	"github.com/dextertanyj/flight-radar-scrapper/config"
	"github.com/dextertanyj/flight-radar-scrapper/report"
)

// RowWriter persists the report artifact. Implementations skip blank cells
// where the medium has per-cell defaults to preserve.
type RowWriter interface {
	WriteHeader(headers []string) error
	WriteRow(row report.Row) error
	Close() error
}

// New returns the writer for the configured output format.
func New(cfg config.OutputConfig) (RowWriter, error) {
	switch cfg.Format {
	case "", "xlsx":
		return NewXLSXWriter(cfg.Path), nil
	case "csv":
		return NewCSVWriter(cfg.Path)
	case "mssql":
		return NewSaver(cfg.DSN, cfg.Table)
	}
	return nil, fmt.Errorf("unknown output format %q", cfg.Format)
}

// WriteAll streams the header and every row through w, then closes it.
func WriteAll(w RowWriter, headers []string, rows []report.Row) error {
	if err := w.WriteHeader(headers); err != nil {
		w.Close()
		return err
	}
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
