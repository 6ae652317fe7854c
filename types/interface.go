package types

import "context"

// RequestScheduler dispatches page requests to the worker pool.
type RequestScheduler interface {
	Submit(Request)
	ConfigureRequestChan(chan Request)
}

// RateLimiter throttles outbound fetches shared by all workers.
type RateLimiter interface {
	Wait(ctx context.Context) error
	Faster()
	Slower()
	QPS() float64
	Run(ctx context.Context)
}

// Notifier receives crawl progress samples.
type Notifier interface {
	Notify(Progress)
	Run(ctx context.Context)
}
