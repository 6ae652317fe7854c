package persist

import (
	"database/sql"
	"fmt"

	_ "github.com/denisenkom/go-mssqldb"

	"github.com/dextertanyj/flight-radar-scrapper/report"
)

const defaultTable = "Turnaround"

// Saver archives rows into a SQL Server table for runs that feed the
// downstream database instead of a spreadsheet.
type Saver struct {
	conn  *sql.DB
	table string
}

func NewSaver(dsn, table string) (*Saver, error) {
	conn, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, err
	}
	if table == "" {
		table = defaultTable
	}
	return &Saver{conn: conn, table: table}, nil
}

// WriteHeader is a no-op: the schema is the table's column list.
func (s *Saver) WriteHeader(headers []string) error {
	return nil
}

func (s *Saver) WriteRow(row report.Row) error {
	query := fmt.Sprintf(`insert into [dbo].[%s]`+
		` (airportName,airportCode,airline,typeName,typeCode,registration,`+
		`date,groundTime,fromFlight,fromAirport,fromAirportCode,arrivalTime,`+
		`toFlight,toAirport,toAirportCode,departureTime)`+
		` values (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8,@p9,@p10,@p11,@p12,@p13,@p14,@p15,@p16)`,
		s.table)
	_, err := s.conn.Exec(query,
		row[report.AirportNameHeader],
		row[report.AirportCodeHeader],
		row[report.AirlineHeader],
		row[report.TypeNameHeader],
		row[report.TypeCodeHeader],
		row[report.RegistrationHeader],
		row[report.DateHeader],
		row[report.GroundTimeHeader],
		row[report.FromFlightHeader],
		row[report.FromAirportHeader],
		row[report.FromAirportCodeHeader],
		row[report.ArrivalTimeHeader],
		row[report.ToFlightHeader],
		row[report.ToAirportHeader],
		row[report.ToAirportCodeHeader],
		row[report.DepartureTimeHeader],
	)
	return err
}

func (s *Saver) Close() error {
	return s.conn.Close()
}
