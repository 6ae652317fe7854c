package parser

import (
	"errors"

	"github.com/PuerkitoBio/goquery"

	"github.com/dextertanyj/flight-radar-scrapper/types"
	"github.com/dextertanyj/flight-radar-scrapper/utils"
)

// ErrMissingField reports an expected structural element absent from a
// fetched page. It is not recovered at the crawl layer.
var ErrMissingField = errors.New("expected field missing")

// ParseAirlines extracts {name, link} pairs from the airline directory.
func ParseAirlines(doc *goquery.Document) []*types.Airline {
	var airlines []*types.Airline
	doc.Find("td.notranslate").Each(func(_ int, cell *goquery.Selection) {
		anchor := cell.Find("a").First()
		if anchor.Length() == 0 {
			return
		}
		link, ok := anchor.Attr("href")
		if !ok {
			return
		}
		airlines = append(airlines, &types.Airline{
			Name: utils.CleanString(anchor.Text()),
			Link: link,
		})
	})
	return airlines
}
