package types

import (
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Airport is the canonical record for one airport. Every flight that
// references a code holds the single *Airport owned by the store registry,
// so pointer identity and code equality agree for the whole run.
type Airport struct {
	Code string
	Name string
}

func (a *Airport) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Code)
}

// Flight is one row of an aircraft's flight log. Immutable once built.
// Source and Destination may be nil when the site does not publish an
// endpoint; timestamp fields are nil when the log carries no value.
type Flight struct {
	Name        string
	Source      *Airport
	Destination *Airport

	FlightTime *time.Duration

	ScheduledDeparture *time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   *time.Time
	ActualArrival      *time.Time
}

// IsExtractable reports whether the flight carries enough telemetry to take
// part in sequencing: at least one endpoint airport and one actual instant.
func (f *Flight) IsExtractable() bool {
	return (f.Source != nil || f.Destination != nil) &&
		(f.ActualDeparture != nil || f.ActualArrival != nil)
}

// Aircraft is one airframe discovered during fleet listing. Type info and
// the flight log are filled in during detail retrieval by the single worker
// that owns the task; afterwards the record is read-only.
type Aircraft struct {
	Registration string
	Link         string
	TypeName     string
	TypeCode     string
	Flights      []*Flight
}

func (a *Aircraft) AddDetails(typeName, typeCode string) {
	a.TypeName = typeName
	a.TypeCode = typeCode
}

// AddFlight appends in discovery order, which is not necessarily
// chronological.
func (a *Aircraft) AddFlight(f *Flight) {
	a.Flights = append(a.Flights, f)
}

// Airline owns the aircraft discovered from its fleet listing.
type Airline struct {
	Name      string
	Link      string
	Aircrafts []*Aircraft
}

func (a *Airline) AddAircraft(aircraft *Aircraft) {
	a.Aircrafts = append(a.Aircrafts, aircraft)
}

// TurnaroundEvent pairs an aircraft's arrival with its next departure from
// the same airport. Derived per aircraft during reporting, never persisted.
type TurnaroundEvent struct {
	Incoming *Flight
	Outgoing *Flight
}

// GroundTime is the interval the aircraft spent on the ground between the
// two legs. The sequencer guarantees both instants are present.
func (e TurnaroundEvent) GroundTime() time.Duration {
	return e.Outgoing.ActualDeparture.Sub(*e.Incoming.ActualArrival)
}

// Request binds a page URL to the parser that understands it.
type Request struct {
	Url   string
	Parse func(doc *goquery.Document) (ParseResult, error)
}

// ParseResult carries whatever a page parse produced.
type ParseResult struct {
	Request Request
	Items   []interface{}
}

// Progress is one sample of the crawl's progress trace.
type Progress struct {
	Phase     string
	Airlines  int
	Fleets    int
	Aircrafts int
	Total     int
	Rows      int
}
