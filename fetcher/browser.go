package fetcher

import (
	"context"

	"github.com/dextertanyj/flight-radar-scrapper/config"
)

// Browser is the page-retrieval collaborator a Session drives. Get returns
// the page source for url; any error is a driver-level fault the Session
// recovers by recreating the Browser.
type Browser interface {
	Get(ctx context.Context, url string) (string, error)
	Close() error
}

// Factory creates a fresh Browser. Sessions hold one to reinitialize after
// driver faults.
type Factory func(ctx context.Context) (Browser, error)

// NewFactory selects the browser implementation from config.
func NewFactory(cfg config.FetchConfig) Factory {
	switch cfg.Browser {
	case "http":
		return func(ctx context.Context) (Browser, error) {
			return NewHTTPBrowser(cfg.Referer), nil
		}
	default:
		return NewChromeBrowser
	}
}
