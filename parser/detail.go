package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dextertanyj/flight-radar-scrapper/store"
	"github.com/dextertanyj/flight-radar-scrapper/types"
	"github.com/dextertanyj/flight-radar-scrapper/utils"
)

// Column layout of one row of the flight-history table.
const (
	colFrom = iota + 1
	colTo
	colFlight
	colFlightTime
	colScheduledDeparture
	colActualDeparture
	colScheduledArrival
	colStatus
)

// landedPrefix marks a status cell whose timestamp is an actual arrival
// rather than an estimate.
const landedPrefix = "Landed "

// ParseAircraftDetails fills in the aircraft's type info and full flight
// log. Airports are resolved through the shared registry so every flight
// referencing a code holds the one canonical record.
func ParseAircraftDetails(doc *goquery.Document, aircraft *types.Aircraft, airports *store.AirportRegistry) error {
	typeName, err := detailField(doc, "AIRCRAFT")
	if err != nil {
		return err
	}
	typeCode, err := detailField(doc, "TYPE CODE")
	if err != nil {
		return err
	}
	aircraft.AddDetails(typeName, typeCode)

	doc.Find("tr.data-row").Each(func(_ int, row *goquery.Selection) {
		aircraft.AddFlight(parseFlight(row, airports))
	})
	return nil
}

// detailField reads the span.details value beside the label with the given
// caption.
func detailField(doc *goquery.Document, label string) (string, error) {
	caption := doc.Find("label").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == label
	}).First()
	if caption.Length() == 0 {
		return "", fmt.Errorf("detail label %q: %w", label, ErrMissingField)
	}
	value := caption.Parent().Find("span.details").First()
	if value.Length() == 0 {
		return "", fmt.Errorf("detail value %q: %w", label, ErrMissingField)
	}
	return utils.CleanString(value.Text()), nil
}

func parseFlight(row *goquery.Selection, airports *store.AirportRegistry) *types.Flight {
	cells := row.Find("td")

	flightCell := cells.Eq(colFlight)
	var name string
	if anchor := flightCell.Find("a").First(); anchor.Length() > 0 {
		name = utils.CleanString(anchor.Text())
	} else {
		name = utils.CleanString(flightCell.Text())
	}

	// The status cell's timestamp is an arrival estimate unless the row
	// is marked landed.
	var actualArrival *time.Time
	status := cells.Eq(colStatus)
	if prefix, _ := status.Attr("data-prefix"); prefix == landedPrefix {
		actualArrival = utils.ParseUnix(attr(status, "data-timestamp"))
	}

	return &types.Flight{
		Name:               name,
		Source:             parseAirport(cells.Eq(colFrom), airports),
		Destination:        parseAirport(cells.Eq(colTo), airports),
		FlightTime:         utils.ParseHourMinute(utils.CleanString(cells.Eq(colFlightTime).Text())),
		ScheduledDeparture: utils.ParseUnix(attr(cells.Eq(colScheduledDeparture), "data-timestamp")),
		ActualDeparture:    utils.ParseUnix(attr(cells.Eq(colActualDeparture), "data-timestamp")),
		ScheduledArrival:   utils.ParseUnix(attr(cells.Eq(colScheduledArrival), "data-timestamp")),
		ActualArrival:      actualArrival,
	}
}

// parseAirport resolves the airport referenced by a from/to cell, returning
// nil when the cell carries none. The cell title is "City, Country"; the
// city is the airport's display name.
func parseAirport(cell *goquery.Selection, airports *store.AirportRegistry) *types.Airport {
	anchor := cell.Find("a").First()
	if anchor.Length() == 0 {
		return nil
	}
	code := utils.CleanString(anchor.Text())
	if code == "" {
		return nil
	}
	title, _ := cell.Attr("title")
	name := utils.CleanString(strings.SplitN(title, ",", 2)[0])
	return airports.GetOrCreate(code, name)
}

func attr(s *goquery.Selection, name string) string {
	value, _ := s.Attr(name)
	return value
}
