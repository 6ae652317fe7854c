package store

import (
	"sync"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// AirportRegistry is the one structure mutated across worker boundaries.
// It guarantees a single live *types.Airport per code, so downstream
// airport comparisons reduce to comparing canonical records.
type AirportRegistry struct {
	mu       sync.Mutex
	airports map[string]*types.Airport
}

func NewAirportRegistry() *AirportRegistry {
	return &AirportRegistry{
		airports: make(map[string]*types.Airport),
	}
}

// GetOrCreate returns the canonical record for code, creating it with name
// on first sight. The name argument of any later call is ignored.
func (r *AirportRegistry) GetOrCreate(code, name string) *types.Airport {
	r.mu.Lock()
	defer r.mu.Unlock()

	if airport, ok := r.airports[code]; ok {
		return airport
	}
	airport := &types.Airport{Code: code, Name: name}
	r.airports[code] = airport
	return airport
}

// Len reports how many distinct airports have been seen so far.
func (r *AirportRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.airports)
}
