package sequencer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

var (
	lax = &types.Airport{Code: "LAX", Name: "Los Angeles"}
	jfk = &types.Airport{Code: "JFK", Name: "New York"}
	ord = &types.Airport{Code: "ORD", Name: "Chicago"}
	den = &types.Airport{Code: "DEN", Name: "Denver"}
)

func at(hour, minute int) *time.Time {
	t := time.Date(2024, 3, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestPairsArrivalWithNextDeparture(t *testing.T) {
	a := &types.Flight{Name: "AA100", Source: lax, Destination: jfk, ActualDeparture: at(10, 0), ActualArrival: at(18, 0)}
	b := &types.Flight{Name: "AA200", Source: jfk, Destination: ord, ActualDeparture: at(20, 0), ActualArrival: at(22, 0)}
	c := &types.Flight{Name: "AA300", Source: jfk, Destination: den}

	// Discovery order is not chronological; C is not extractable.
	events := Sequence([]*types.Flight{c, b, a})

	require.Len(t, events, 1)
	assert.Same(t, a, events[0].Incoming)
	assert.Same(t, b, events[0].Outgoing)
	assert.Equal(t, 2*time.Hour, events[0].GroundTime())
}

func TestOrderableFiltersAndSorts(t *testing.T) {
	departed := &types.Flight{Name: "late", Source: jfk, Destination: ord, ActualDeparture: at(20, 0)}
	arrivedOnly := &types.Flight{Name: "early", Source: lax, Destination: jfk, ActualArrival: at(18, 0)}
	noAirports := &types.Flight{Name: "bare", ActualDeparture: at(9, 0)}
	noInstants := &types.Flight{Name: "quiet", Source: jfk, Destination: den, ScheduledDeparture: at(8, 0)}

	ordered := Orderable([]*types.Flight{departed, noAirports, noInstants, arrivedOnly})

	require.Len(t, ordered, 2)
	// The arrival-only flight sorts on its arrival instant.
	assert.Same(t, arrivedOnly, ordered[0])
	assert.Same(t, departed, ordered[1])
}

func TestOrderableIsStable(t *testing.T) {
	first := &types.Flight{Name: "first", Source: lax, Destination: jfk, ActualDeparture: at(10, 0)}
	second := &types.Flight{Name: "second", Source: jfk, Destination: ord, ActualDeparture: at(10, 0)}

	ordered := Orderable([]*types.Flight{first, second})

	require.Len(t, ordered, 2)
	assert.Same(t, first, ordered[0])
	assert.Same(t, second, ordered[1])
}

func TestNearestPrecedingMatchWins(t *testing.T) {
	far := &types.Flight{Name: "far", Source: lax, Destination: jfk, ActualDeparture: at(6, 0), ActualArrival: at(8, 0)}
	detour := &types.Flight{Name: "detour", Source: jfk, Destination: den, ActualDeparture: at(9, 0), ActualArrival: at(11, 0)}
	near := &types.Flight{Name: "near", Source: den, Destination: jfk, ActualDeparture: at(12, 0), ActualArrival: at(14, 0)}
	outgoing := &types.Flight{Name: "out", Source: jfk, Destination: ord, ActualDeparture: at(16, 0), ActualArrival: at(18, 0)}

	events := Sequence([]*types.Flight{far, detour, near, outgoing})

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Same(t, near, last.Incoming)
	assert.Same(t, outgoing, last.Outgoing)
}

func TestSkipsCandidateWithoutMatch(t *testing.T) {
	a := &types.Flight{Name: "a", Source: lax, Destination: jfk, ActualDeparture: at(10, 0), ActualArrival: at(12, 0)}
	b := &types.Flight{Name: "b", Source: den, Destination: ord, ActualDeparture: at(14, 0), ActualArrival: at(16, 0)}

	// b departs from DEN but nothing earlier arrived there.
	events := Sequence([]*types.Flight{a, b})
	assert.Empty(t, events)
}

func TestSkipsMatchWithoutActualArrival(t *testing.T) {
	a := &types.Flight{Name: "a", Source: lax, Destination: jfk, ActualDeparture: at(10, 0)}
	b := &types.Flight{Name: "b", Source: jfk, Destination: ord, ActualDeparture: at(14, 0), ActualArrival: at(16, 0)}

	events := Sequence([]*types.Flight{a, b})
	assert.Empty(t, events)
}

func TestFewerThanTwoExtractableFlights(t *testing.T) {
	assert.Empty(t, Sequence(nil))

	only := &types.Flight{Name: "only", Source: lax, Destination: jfk, ActualDeparture: at(10, 0), ActualArrival: at(12, 0)}
	assert.Empty(t, Sequence([]*types.Flight{only}))
}

func TestAirportEqualityIsByCode(t *testing.T) {
	// Distinct instances sharing a code still match; the registry normally
	// prevents this, but pairing itself only compares codes.
	jfkTwin := &types.Airport{Code: "JFK", Name: "Idlewild"}
	a := &types.Flight{Name: "a", Source: lax, Destination: jfk, ActualDeparture: at(10, 0), ActualArrival: at(12, 0)}
	b := &types.Flight{Name: "b", Source: jfkTwin, Destination: ord, ActualDeparture: at(14, 0), ActualArrival: at(16, 0)}

	events := Sequence([]*types.Flight{a, b})
	require.Len(t, events, 1)
	assert.Same(t, a, events[0].Incoming)
}
