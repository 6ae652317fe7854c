package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/gommon/log"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// RetryPolicy bounds driver-fault recovery. Attempts counts full
// reinitialize-and-retry cycles; the backoff doubles up to Cap.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
	Cap      time.Duration

	// ChallengeMarker is the signature of the site's anti-automation
	// interstitial; PollInterval is how long to wait between re-polls.
	ChallengeMarker string
	PollInterval    time.Duration
}

// Session is one worker's exclusive fetch context. It owns a Browser,
// waits out the site's bot-challenge interstitial, and recovers
// driver-level faults by recreating the Browser in place.
type Session struct {
	browser Browser
	factory Factory
	limiter types.RateLimiter
	policy  RetryPolicy
}

// NewSession starts a Session with a fresh Browser. The caller must Close
// it on every exit path; otherwise browser processes leak.
func NewSession(ctx context.Context, factory Factory, limiter types.RateLimiter, policy RetryPolicy) (*Session, error) {
	browser, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("create browser: %w", err)
	}
	return &Session{
		browser: browser,
		factory: factory,
		limiter: limiter,
		policy:  policy,
	}, nil
}

// Fetch retrieves url and parses it. Bot challenges are polled until they
// clear; driver faults tear the browser down and retry with exponential
// backoff until the policy's attempts run out or ctx is cancelled.
func (s *Session) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	backoff := s.policy.Backoff
	var lastErr error

	for attempt := 0; attempt <= s.policy.Attempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, backoff); err != nil {
				return nil, err
			}
			if backoff *= 2; backoff > s.policy.Cap {
				backoff = s.policy.Cap
			}
			if err := s.reinitialize(ctx); err != nil {
				lastErr = err
				continue
			}
		}

		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		html, err := s.browser.Get(ctx, url)
		for err == nil && s.policy.ChallengeMarker != "" && strings.Contains(html, s.policy.ChallengeMarker) {
			log.Infof("bot protection triggered on %s", url)
			if serr := sleep(ctx, s.policy.PollInterval); serr != nil {
				return nil, serr
			}
			html, err = s.browser.Get(ctx, url)
		}
		if err != nil {
			lastErr = err
			if s.limiter != nil {
				s.limiter.Slower()
			}
			log.Warnf("fetch %s: %v", url, err)
			continue
		}

		return goquery.NewDocumentFromReader(strings.NewReader(html))
	}
	return nil, fmt.Errorf("fetch %s: attempts exhausted: %w", url, lastErr)
}

// reinitialize discards the wedged browser and starts a fresh one.
func (s *Session) reinitialize(ctx context.Context) error {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			log.Warnf("close browser: %v", err)
		}
		s.browser = nil
	}
	browser, err := s.factory(ctx)
	if err != nil {
		return fmt.Errorf("recreate browser: %w", err)
	}
	s.browser = browser
	log.Info("reinitialized session")
	return nil
}

// Close tears down the underlying browser and its OS-level processes.
func (s *Session) Close() {
	if s.browser == nil {
		return
	}
	if err := s.browser.Close(); err != nil {
		log.Warnf("close browser: %v", err)
	}
	s.browser = nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
