package ratelimiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

type tokenBucketRateLimiter struct {
	limiter *rate.Limiter
	fastest rate.Limit
	slowest rate.Limit
	sync.Mutex
}

// NewTokenBucket returns a shared fetch limiter sustaining r requests per
// second with the given burst. Workers call Slower on faults; Run creeps
// the rate back up while the crawl is healthy.
func NewTokenBucket(r float64, burst int) types.RateLimiter {
	return &tokenBucketRateLimiter{
		limiter: rate.NewLimiter(rate.Limit(r), burst),
		fastest: rate.Limit(r),
		slowest: rate.Limit(0.2),
	}
}

func (lim *tokenBucketRateLimiter) Wait(ctx context.Context) error {
	return lim.limiter.Wait(ctx)
}

func (lim *tokenBucketRateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			lim.Faster()
		}
	}
}

func (lim *tokenBucketRateLimiter) Faster() {
	lim.Lock()
	defer lim.Unlock()

	if lim.limiter.Limit() >= lim.fastest {
		return
	}
	lim.limiter.SetLimit(lim.limiter.Limit() + 0.1)
}

func (lim *tokenBucketRateLimiter) Slower() {
	lim.Lock()
	defer lim.Unlock()

	if lim.limiter.Limit() <= lim.slowest {
		return
	}
	lim.limiter.SetLimit(lim.limiter.Limit() / 2)
}

func (lim *tokenBucketRateLimiter) QPS() float64 {
	return float64(lim.limiter.Limit())
}
