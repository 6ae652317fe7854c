// Package report projects airline, aircraft and turnaround records into
// rows over the fixed output schema.
package report

import (
	"fmt"
	"time"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// Column headers of the output artifact.
const (
	AirportNameHeader     = "AIRPORT NAME"
	AirportCodeHeader     = "ICAO AIRPORT CODE"
	AirlineHeader         = "AIRLINE"
	TypeNameHeader        = "TYPE NAME"
	TypeCodeHeader        = "TYPE CODE"
	RegistrationHeader    = "REGISTRATION"
	DateHeader            = "DATE"
	GroundTimeHeader      = "GROUND TIME"
	FromFlightHeader      = "FROM FLIGHT"
	FromAirportHeader     = "FROM AIRPORT"
	FromAirportCodeHeader = "FROM AIRPORT CODE"
	ArrivalTimeHeader     = "ARRIVAL TIME"
	ToFlightHeader        = "TO FLIGHT"
	ToAirportHeader       = "TO AIRPORT"
	ToAirportCodeHeader   = "TO AIRPORT CODE"
	DepartureTimeHeader   = "DEPARTURE TIME"
)

const (
	dateLayout = "02 Jan 2006"
	timeLayout = "15:04"

	unknownValue = "Unknown"
)

// Headers returns the schema in column order.
func Headers() []string {
	return []string{
		AirportNameHeader, AirportCodeHeader, AirlineHeader, TypeNameHeader,
		TypeCodeHeader, RegistrationHeader, DateHeader, GroundTimeHeader,
		FromFlightHeader, FromAirportHeader, FromAirportCodeHeader,
		ArrivalTimeHeader, ToFlightHeader, ToAirportHeader,
		ToAirportCodeHeader, DepartureTimeHeader,
	}
}

// Row is one output row keyed by header. Rows never share storage.
type Row map[string]string

// FieldProvider resolves one record kind's value for a schema field. The
// second return is false when the kind does not claim the field.
type FieldProvider interface {
	Field(name string) (string, bool)
}

// AirlineFields projects an airline into the schema.
type AirlineFields struct {
	Airline *types.Airline
}

func (p AirlineFields) Field(name string) (string, bool) {
	if name == AirlineHeader {
		return p.Airline.Name, true
	}
	return "", false
}

// AircraftFields projects an aircraft into the schema.
type AircraftFields struct {
	Aircraft *types.Aircraft
}

func (p AircraftFields) Field(name string) (string, bool) {
	switch name {
	case RegistrationHeader:
		return p.Aircraft.Registration, true
	case TypeNameHeader:
		return p.Aircraft.TypeName, true
	case TypeCodeHeader:
		return p.Aircraft.TypeCode, true
	}
	return "", false
}

// EventFields projects a turnaround event into the schema. The sequencer
// guarantees Incoming.Destination, Incoming.ActualArrival and
// Outgoing.ActualDeparture; the remaining endpoints may be absent and
// render as "Unknown".
type EventFields struct {
	Event types.TurnaroundEvent
}

func (p EventFields) Field(name string) (string, bool) {
	incoming, outgoing := p.Event.Incoming, p.Event.Outgoing
	switch name {
	case AirportNameHeader:
		return incoming.Destination.Name, true
	case AirportCodeHeader:
		return incoming.Destination.Code, true
	case DateHeader:
		return incoming.ActualArrival.Format(dateLayout), true
	case GroundTimeHeader:
		return FormatGroundTime(p.Event.GroundTime()), true
	case FromFlightHeader:
		return incoming.Name, true
	case FromAirportHeader:
		return airportName(incoming.Source), true
	case FromAirportCodeHeader:
		return airportCode(incoming.Source), true
	case ArrivalTimeHeader:
		return incoming.ActualArrival.Format(timeLayout), true
	case ToFlightHeader:
		return outgoing.Name, true
	case ToAirportHeader:
		return airportName(outgoing.Destination), true
	case ToAirportCodeHeader:
		return airportCode(outgoing.Destination), true
	case DepartureTimeHeader:
		return outgoing.ActualDeparture.Format(timeLayout), true
	}
	return "", false
}

// Builder merges the three record kinds into rows over the fixed schema.
type Builder struct {
	headers []string
}

func NewBuilder() *Builder {
	return &Builder{headers: Headers()}
}

// Rows builds one row per turnaround event, merging airline, aircraft and
// event fields in that order. A later contributor fills only fields the
// earlier ones left blank; unclaimed fields stay blank. Every row is an
// independent copy.
func (b *Builder) Rows(airline *types.Airline, aircraft *types.Aircraft, events []types.TurnaroundEvent) []Row {
	rows := make([]Row, 0, len(events))
	for _, event := range events {
		row := make(Row, len(b.headers))
		for _, header := range b.headers {
			row[header] = ""
		}
		b.merge(row, AirlineFields{Airline: airline})
		b.merge(row, AircraftFields{Aircraft: aircraft})
		b.merge(row, EventFields{Event: event})
		rows = append(rows, row)
	}
	return rows
}

func (b *Builder) merge(row Row, provider FieldProvider) {
	for _, header := range b.headers {
		if row[header] != "" {
			continue
		}
		if value, ok := provider.Field(header); ok && value != "" {
			row[header] = value
		}
	}
}

// FormatGroundTime renders a duration as HH:MM:SS, with hours not wrapped
// at 24.
func FormatGroundTime(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func airportName(a *types.Airport) string {
	if a == nil {
		return unknownValue
	}
	return a.Name
}

func airportCode(a *types.Airport) string {
	if a == nil {
		return unknownValue
	}
	return a.Code
}
