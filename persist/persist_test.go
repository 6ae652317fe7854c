package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/dextertanyj/flight-radar-scrapper/config"
	"github.com/dextertanyj/flight-radar-scrapper/report"
)

func configFor(format string) config.OutputConfig {
	return config.OutputConfig{Format: format, Path: "out"}
}

func sampleRow() report.Row {
	row := make(report.Row)
	for _, header := range report.Headers() {
		row[header] = ""
	}
	row[report.AirlineHeader] = "Alpha Air"
	row[report.RegistrationHeader] = "N123AA"
	row[report.GroundTimeHeader] = "02:00:00"
	return row
}

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	writer, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	if err := WriteAll(writer, report.Headers(), []report.Row{sampleRow()}); err != nil {
		t.Fatalf("write: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count %d; expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "AIRPORT NAME,") {
		t.Errorf("header %q; expected schema order", lines[0])
	}
	if !strings.Contains(lines[1], "Alpha Air") || !strings.Contains(lines[1], "02:00:00") {
		t.Errorf("row %q; expected airline and ground time", lines[1])
	}
}

func TestXLSXWriterSkipsBlankCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.xlsx")

	writer := NewXLSXWriter(path)
	if err := WriteAll(writer, report.Headers(), []report.Row{sampleRow()}); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	header, err := file.GetCellValue(sheetName, "A1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if header != report.AirportNameHeader {
		t.Errorf("cell A1 %q; expected %q", header, report.AirportNameHeader)
	}

	// AIRLINE is the third column; its data cell carries the value while
	// the blank AIRPORT NAME cell was never written.
	airline, err := file.GetCellValue(sheetName, "C2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if airline != "Alpha Air" {
		t.Errorf("cell C2 %q; expected %q", airline, "Alpha Air")
	}
	blank, err := file.GetCellValue(sheetName, "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if blank != "" {
		t.Errorf("cell A2 %q; expected blank", blank)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(configFor("parquet")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
