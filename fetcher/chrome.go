package fetcher

import (
	"context"

	"github.com/chromedp/chromedp"
)

// chromeBrowser drives one headless Chrome instance. Headless mode stands
// in for the virtual display the site's interstitial expects a real screen
// behind; Close tears down the browser process tree.
type chromeBrowser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// NewChromeBrowser starts a fresh headless Chrome. The browser process is
// launched eagerly so driver faults surface here, not mid-crawl.
func NewChromeBrowser(parent context.Context) (Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(800, 600),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, err
	}
	return &chromeBrowser{
		ctx:         ctx,
		cancel:      cancel,
		allocCancel: allocCancel,
	}, nil
}

func (b *chromeBrowser) Get(ctx context.Context, url string) (string, error) {
	var html string
	err := chromedp.Run(b.ctx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}

func (b *chromeBrowser) Close() error {
	b.cancel()
	b.allocCancel()
	return nil
}
