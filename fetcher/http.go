package fetcher

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime"
	"net/http"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var agents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
}

func getAgent() string {
	return agents[rand.Intn(len(agents))]
}

type httpBrowser struct {
	client  *http.Client
	referer string
}

// NewHTTPBrowser returns a plain-HTTP Browser. It cannot clear script-based
// challenges, but the Session's marker polling still applies.
func NewHTTPBrowser(referer string) Browser {
	return &httpBrowser{
		client:  &http.Client{},
		referer: referer,
	}
}

func (b *httpBrowser) Get(ctx context.Context, url string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("User-Agent", getAgent())
	request.Header.Set("Referer", b.referer)
	request.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	request.Header.Set("Connection", "keep-alive")

	resp, err := b.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: wrong status code: %d", url, resp.StatusCode)
	}

	body, err := decode(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return string(body), nil
}

func (b *httpBrowser) Close() error {
	b.client.CloseIdleConnections()
	return nil
}

// decode converts the response body to UTF-8 based on the declared charset.
func decode(body io.Reader, contentType string) ([]byte, error) {
	charset := "utf-8"
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if cs, ok := params["charset"]; ok {
			charset = cs
		}
	}
	enc, err := htmlindex.Get(charset)
	if err != nil || enc == unicode.UTF8 {
		return io.ReadAll(body)
	}
	return io.ReadAll(transform.NewReader(body, enc.NewDecoder()))
}
