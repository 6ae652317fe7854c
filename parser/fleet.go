package parser

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/dextertanyj/flight-radar-scrapper/types"
	"github.com/dextertanyj/flight-radar-scrapper/utils"
)

// ParseFleet adds the fleet listing's {registration, link} aircraft entries
// to the airline.
func ParseFleet(doc *goquery.Document, airline *types.Airline) {
	doc.Find("a.regLinks").Each(func(_ int, anchor *goquery.Selection) {
		link, ok := anchor.Attr("href")
		if !ok {
			return
		}
		airline.AddAircraft(&types.Aircraft{
			Registration: utils.CleanString(anchor.Text()),
			Link:         link,
		})
	})
}
