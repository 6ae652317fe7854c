// Package seeds builds the crawl's page requests, binding each URL to the
// parser that understands it.
package seeds

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/dextertanyj/flight-radar-scrapper/parser"
	"github.com/dextertanyj/flight-radar-scrapper/store"
	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// AirlinesRequest seeds the crawl with the airline directory page.
func AirlinesRequest(baseURL string) types.Request {
	return types.Request{
		Url: baseURL + "/data/airlines",
		Parse: func(doc *goquery.Document) (types.ParseResult, error) {
			result := types.ParseResult{}
			for _, airline := range parser.ParseAirlines(doc) {
				result.Items = append(result.Items, airline)
			}
			return result, nil
		},
	}
}

// FleetRequest fetches one airline's fleet listing and appends the
// discovered aircraft to it.
func FleetRequest(baseURL string, airline *types.Airline) types.Request {
	return types.Request{
		Url: baseURL + airline.Link + "/fleet",
		Parse: func(doc *goquery.Document) (types.ParseResult, error) {
			parser.ParseFleet(doc, airline)
			return types.ParseResult{Items: []interface{}{airline}}, nil
		},
	}
}

// DetailResult pairs a completed aircraft with its airline so the collector
// can project both into the output rows.
type DetailResult struct {
	Airline  *types.Airline
	Aircraft *types.Aircraft
}

// DetailRequest fetches one aircraft's detail page, filling its type info
// and flight log through the shared airport registry.
func DetailRequest(baseURL string, airline *types.Airline, aircraft *types.Aircraft, airports *store.AirportRegistry) types.Request {
	return types.Request{
		Url: baseURL + aircraft.Link,
		Parse: func(doc *goquery.Document) (types.ParseResult, error) {
			if err := parser.ParseAircraftDetails(doc, aircraft, airports); err != nil {
				return types.ParseResult{}, err
			}
			return types.ParseResult{
				Items: []interface{}{DetailResult{Airline: airline, Aircraft: aircraft}},
			}, nil
		},
	}
}
