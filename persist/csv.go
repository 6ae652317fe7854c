package persist

import (
	"encoding/csv"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/dextertanyj/flight-radar-scrapper/report"
)

// record mirrors the report schema for CSV encoding.
type record struct {
	AirportName     string `csv:"AIRPORT NAME"`
	AirportCode     string `csv:"ICAO AIRPORT CODE"`
	Airline         string `csv:"AIRLINE"`
	TypeName        string `csv:"TYPE NAME"`
	TypeCode        string `csv:"TYPE CODE"`
	Registration    string `csv:"REGISTRATION"`
	Date            string `csv:"DATE"`
	GroundTime      string `csv:"GROUND TIME"`
	FromFlight      string `csv:"FROM FLIGHT"`
	FromAirport     string `csv:"FROM AIRPORT"`
	FromAirportCode string `csv:"FROM AIRPORT CODE"`
	ArrivalTime     string `csv:"ARRIVAL TIME"`
	ToFlight        string `csv:"TO FLIGHT"`
	ToAirport       string `csv:"TO AIRPORT"`
	ToAirportCode   string `csv:"TO AIRPORT CODE"`
	DepartureTime   string `csv:"DEPARTURE TIME"`
}

// CSVWriter writes the artifact as a CSV file. CSV has no per-cell
// defaults, so blank fields are written as empty cells.
type CSVWriter struct {
	file    *os.File
	writer  *csv.Writer
	encoder *csvutil.Encoder
}

func NewCSVWriter(path string) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	writer := csv.NewWriter(file)
	encoder := csvutil.NewEncoder(writer)
	encoder.AutoHeader = false
	return &CSVWriter{
		file:    file,
		writer:  writer,
		encoder: encoder,
	}, nil
}

func (w *CSVWriter) WriteHeader(headers []string) error {
	return w.writer.Write(headers)
}

func (w *CSVWriter) WriteRow(row report.Row) error {
	return w.encoder.Encode(toRecord(row))
}

func (w *CSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func toRecord(row report.Row) record {
	return record{
		AirportName:     row[report.AirportNameHeader],
		AirportCode:     row[report.AirportCodeHeader],
		Airline:         row[report.AirlineHeader],
		TypeName:        row[report.TypeNameHeader],
		TypeCode:        row[report.TypeCodeHeader],
		Registration:    row[report.RegistrationHeader],
		Date:            row[report.DateHeader],
		GroundTime:      row[report.GroundTimeHeader],
		FromFlight:      row[report.FromFlightHeader],
		FromAirport:     row[report.FromAirportHeader],
		FromAirportCode: row[report.FromAirportCodeHeader],
		ArrivalTime:     row[report.ArrivalTimeHeader],
		ToFlight:        row[report.ToFlightHeader],
		ToAirport:       row[report.ToAirportHeader],
		ToAirportCode:   row[report.ToAirportCodeHeader],
		DepartureTime:   row[report.DepartureTimeHeader],
	}
}
