// Package sequencer turns one aircraft's raw flight log into an ordered
// list of turnaround events.
package sequencer

import (
	"sort"
	"time"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// Orderable returns the extractable flights in chronological order. The
// sort key is the actual departure when present, else the actual arrival;
// the sort is stable so input order breaks ties.
func Orderable(flights []*types.Flight) []*types.Flight {
	ordered := make([]*types.Flight, 0, len(flights))
	for _, flight := range flights {
		if flight.IsExtractable() {
			ordered = append(ordered, flight)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return instant(ordered[i]).Before(instant(ordered[j]))
	})
	return ordered
}

// instant is the representative sort instant of an extractable flight.
func instant(f *types.Flight) time.Time {
	if f.ActualDeparture != nil {
		return *f.ActualDeparture
	}
	return *f.ActualArrival
}

// Sequence pairs each departing leg with the nearest preceding flight that
// arrived at its departure airport.
//
// Matching is greedy nearest-preceding, not a global assignment: when
// several earlier flights share the destination code the closest one wins,
// and a matched incoming leg is not excluded from matching again for a
// later candidate. A candidate with no preceding match, or whose match
// lacks an actual arrival, is skipped silently. Fewer than two extractable
// flights yield no events.
func Sequence(flights []*types.Flight) []types.TurnaroundEvent {
	ordered := Orderable(flights)

	var events []types.TurnaroundEvent
	for idx := 1; idx < len(ordered); idx++ {
		outgoing := ordered[idx]
		if outgoing.Source == nil || outgoing.ActualDeparture == nil {
			continue
		}
		incomingIdx := idx - 1
		for incomingIdx >= 0 && !sameAirport(ordered[incomingIdx].Destination, outgoing.Source) {
			incomingIdx--
		}
		if incomingIdx < 0 {
			continue
		}
		incoming := ordered[incomingIdx]
		if incoming.ActualArrival == nil {
			continue
		}
		events = append(events, types.TurnaroundEvent{
			Incoming: incoming,
			Outgoing: outgoing,
		})
	}
	return events
}

func sameAirport(a, b *types.Airport) bool {
	return a != nil && b != nil && a.Code == b.Code
}
