package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

func at(hour, minute int) *time.Time {
	t := time.Date(2024, 3, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func fixtures() (*types.Airline, *types.Aircraft, types.TurnaroundEvent) {
	lax := &types.Airport{Code: "LAX", Name: "Los Angeles"}
	jfk := &types.Airport{Code: "JFK", Name: "New York"}
	ord := &types.Airport{Code: "ORD", Name: "Chicago"}

	airline := &types.Airline{Name: "Alpha Air"}
	aircraft := &types.Aircraft{Registration: "N123AA", TypeName: "Boeing 737-800", TypeCode: "B738"}
	event := types.TurnaroundEvent{
		Incoming: &types.Flight{Name: "AA100", Source: lax, Destination: jfk, ActualDeparture: at(10, 0), ActualArrival: at(18, 0)},
		Outgoing: &types.Flight{Name: "AA200", Source: jfk, Destination: ord, ActualDeparture: at(20, 0), ActualArrival: at(22, 0)},
	}
	return airline, aircraft, event
}

func TestRowsMergeEachKindsFields(t *testing.T) {
	airline, aircraft, event := fixtures()

	rows := NewBuilder().Rows(airline, aircraft, []types.TurnaroundEvent{event})
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, "Alpha Air", row[AirlineHeader])
	assert.Equal(t, "N123AA", row[RegistrationHeader])
	assert.Equal(t, "Boeing 737-800", row[TypeNameHeader])
	assert.Equal(t, "B738", row[TypeCodeHeader])
	assert.Equal(t, "New York", row[AirportNameHeader])
	assert.Equal(t, "JFK", row[AirportCodeHeader])
	assert.Equal(t, "01 Mar 2024", row[DateHeader])
	assert.Equal(t, "02:00:00", row[GroundTimeHeader])
	assert.Equal(t, "AA100", row[FromFlightHeader])
	assert.Equal(t, "Los Angeles", row[FromAirportHeader])
	assert.Equal(t, "LAX", row[FromAirportCodeHeader])
	assert.Equal(t, "18:00", row[ArrivalTimeHeader])
	assert.Equal(t, "AA200", row[ToFlightHeader])
	assert.Equal(t, "Chicago", row[ToAirportHeader])
	assert.Equal(t, "ORD", row[ToAirportCodeHeader])
	assert.Equal(t, "20:00", row[DepartureTimeHeader])

	// Every schema field is present, none from more than one contributor.
	assert.Len(t, row, len(Headers()))
}

func TestRowsAreIndependentCopies(t *testing.T) {
	airline, aircraft, event := fixtures()

	rows := NewBuilder().Rows(airline, aircraft, []types.TurnaroundEvent{event, event})
	require.Len(t, rows, 2)

	rows[0][AirlineHeader] = "mutated"
	assert.Equal(t, "Alpha Air", rows[1][AirlineHeader])
}

func TestUnprovidedFieldsStayBlank(t *testing.T) {
	airline, aircraft, event := fixtures()
	aircraft.TypeName = ""
	event.Incoming.Source = nil

	rows := NewBuilder().Rows(airline, aircraft, []types.TurnaroundEvent{event})
	require.Len(t, rows, 1)

	assert.Equal(t, "", rows[0][TypeNameHeader])
	assert.Equal(t, "Unknown", rows[0][FromAirportHeader])
	assert.Equal(t, "Unknown", rows[0][FromAirportCodeHeader])
}

func TestFormatGroundTime(t *testing.T) {
	assert.Equal(t, "02:00:00", FormatGroundTime(2*time.Hour))
	assert.Equal(t, "00:01:30", FormatGroundTime(90*time.Second))
	// Hours are not wrapped at 24.
	assert.Equal(t, "26:15:05", FormatGroundTime(26*time.Hour+15*time.Minute+5*time.Second))
}
