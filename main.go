package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/gommon/log"

	"github.com/dextertanyj/flight-radar-scrapper/config"
	"github.com/dextertanyj/flight-radar-scrapper/engine"
	"github.com/dextertanyj/flight-radar-scrapper/fetcher"
	"github.com/dextertanyj/flight-radar-scrapper/notifier"
	"github.com/dextertanyj/flight-radar-scrapper/persist"
	"github.com/dextertanyj/flight-radar-scrapper/ratelimiter"
	"github.com/dextertanyj/flight-radar-scrapper/report"
	"github.com/dextertanyj/flight-radar-scrapper/scheduler"
	"github.com/dextertanyj/flight-radar-scrapper/store"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := ratelimiter.NewTokenBucket(cfg.Fetch.RatePerSecond, cfg.Fetch.RateBurst)
	factory := fetcher.NewFactory(cfg.Fetch)
	policy := fetcher.RetryPolicy{
		Attempts:        cfg.Fetch.RetryAttempts,
		Backoff:         cfg.Fetch.RetryBackoff,
		Cap:             cfg.Fetch.RetryBackoffCap,
		ChallengeMarker: cfg.Fetch.ChallengeMarker,
		PollInterval:    cfg.Fetch.ChallengePoll,
	}

	e := &engine.Engine{
		Scheduler:   &scheduler.SimpleScheduler{},
		RateLimiter: limiter,
		Notifier:    notifier.NewConsolePrintNotifier(),
		Airports:    store.NewAirportRegistry(),
		Builder:     report.NewBuilder(),
		WorkerCount: cfg.Crawl.WorkerCount,
		BaseURL:     cfg.Crawl.BaseURL,
		NewSession: func(ctx context.Context) (*fetcher.Session, error) {
			return fetcher.NewSession(ctx, factory, limiter, policy)
		},
	}

	rows, runErr := e.Run(ctx)
	if runErr != nil {
		log.Errorf("crawl aborted: %v", runErr)
	}

	// Whatever was accumulated before teardown still gets written.
	log.Info("writing data")
	writer, err := persist.New(cfg.Output)
	if err != nil {
		log.Fatalf("open output: %v", err)
	}
	if err := persist.WriteAll(writer, report.Headers(), rows); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Infof("wrote %d rows", len(rows))

	if runErr != nil {
		os.Exit(1)
	}
}
