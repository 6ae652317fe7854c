package persist

import (
	"github.com/xuri/excelize/v2"

	"github.com/dextertanyj/flight-radar-scrapper/report"
)

const sheetName = "Sheet1"

// XLSXWriter writes the artifact as a single-sheet workbook. Blank cells
// are skipped rather than written, preserving the sheet's defaults.
type XLSXWriter struct {
	file    *excelize.File
	path    string
	headers []string
	row     int
}

func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{
		file: excelize.NewFile(),
		path: path,
		row:  1,
	}
}

func (w *XLSXWriter) WriteHeader(headers []string) error {
	w.headers = headers
	for col, header := range headers {
		if err := w.set(col, header); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

func (w *XLSXWriter) WriteRow(row report.Row) error {
	for col, header := range w.headers {
		value := row[header]
		if value == "" {
			continue
		}
		if err := w.set(col, value); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

func (w *XLSXWriter) set(col int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col+1, w.row)
	if err != nil {
		return err
	}
	return w.file.SetCellValue(sheetName, cell, value)
}

// Close persists the workbook to disk.
func (w *XLSXWriter) Close() error {
	if err := w.file.SaveAs(w.path); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
