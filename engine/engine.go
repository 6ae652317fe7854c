// Package engine drives the multi-phase crawl over a fixed pool of
// workers, each owning one fetch session for its lifetime.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/labstack/gommon/log"

	"github.com/dextertanyj/flight-radar-scrapper/fetcher"
	"github.com/dextertanyj/flight-radar-scrapper/report"
	"github.com/dextertanyj/flight-radar-scrapper/seeds"
	"github.com/dextertanyj/flight-radar-scrapper/sequencer"
	"github.com/dextertanyj/flight-radar-scrapper/store"
	"github.com/dextertanyj/flight-radar-scrapper/types"
)

const (
	requestBuffer = 1000
	resultBuffer  = 100
)

// Engine runs the crawl in three phases: the airline directory, every
// airline's fleet listing (a barrier), then every aircraft's detail page,
// whose completions are sequenced, projected and merged into the output in
// completion order.
type Engine struct {
	Scheduler   types.RequestScheduler
	RateLimiter types.RateLimiter
	Notifier    types.Notifier
	Airports    *store.AirportRegistry
	Builder     *report.Builder
	NewSession  func(ctx context.Context) (*fetcher.Session, error)
	WorkerCount int
	BaseURL     string
}

// result is what a worker hands back for one request.
type result struct {
	parsed types.ParseResult
	err    error
}

// Run executes the crawl and returns the accumulated rows. On a fatal
// parse fault it stops accepting work, cancels outstanding tasks, waits
// for workers to tear down their sessions, and returns the rows collected
// before teardown alongside the error.
func (e *Engine) Run(ctx context.Context) ([]report.Row, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requests := make(chan types.Request, requestBuffer)
	e.Scheduler.ConfigureRequestChan(requests)
	out := make(chan result, resultBuffer)

	var wg sync.WaitGroup
	for i := 0; i < e.WorkerCount; i++ {
		wg.Add(1)
		go e.worker(ctx, i, requests, out, &wg)
	}

	go e.RateLimiter.Run(ctx)
	go e.Notifier.Run(ctx)

	rows, err := e.collect(ctx, out)

	// Release workers blocked on the request channel, then wait for every
	// session to close before handing the rows back.
	cancel()
	wg.Wait()
	return rows, err
}

// worker owns exactly one session for its lifetime and tears it down on
// every exit path.
func (e *Engine) worker(ctx context.Context, id int, requests <-chan types.Request, out chan<- result, wg *sync.WaitGroup) {
	defer wg.Done()

	session, err := e.NewSession(ctx)
	if err != nil {
		select {
		case out <- result{err: fmt.Errorf("worker %d: create session: %w", id, err)}:
		case <-ctx.Done():
		}
		return
	}
	defer session.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-requests:
			if !ok {
				return
			}
			res := e.handle(ctx, session, req)
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (e *Engine) handle(ctx context.Context, session *fetcher.Session, req types.Request) result {
	doc, err := session.Fetch(ctx, req.Url)
	if err != nil {
		return result{err: err}
	}
	parsed, err := req.Parse(doc)
	if err != nil {
		return result{err: fmt.Errorf("parse %s: %w", req.Url, err)}
	}
	parsed.Request = req
	return result{parsed: parsed}
}

// collect runs the three phases, seeding each through the scheduler and
// folding completed tasks into the output.
func (e *Engine) collect(ctx context.Context, out <-chan result) ([]report.Row, error) {
	// Phase 1: the airline directory.
	log.Info("retrieving airlines")
	e.Scheduler.Submit(seeds.AirlinesRequest(e.BaseURL))
	res, err := e.next(ctx, out)
	if err != nil {
		return nil, err
	}
	var airlines []*types.Airline
	for _, item := range res.Items {
		if airline, ok := item.(*types.Airline); ok {
			airlines = append(airlines, airline)
		}
	}
	log.Infof("discovered %d airlines", len(airlines))
	e.Notifier.Notify(types.Progress{Phase: "airlines", Airlines: len(airlines)})

	// Phase 2: fleet listings. The barrier: phase 3 is not seeded until
	// every fleet has been collected.
	for _, airline := range airlines {
		e.Scheduler.Submit(seeds.FleetRequest(e.BaseURL, airline))
	}
	for collected := 0; collected < len(airlines); collected++ {
		if _, err := e.next(ctx, out); err != nil {
			return nil, err
		}
		e.Notifier.Notify(types.Progress{
			Phase:    "fleets",
			Airlines: len(airlines),
			Fleets:   collected + 1,
		})
	}

	var total int
	for _, airline := range airlines {
		total += len(airline.Aircrafts)
	}
	log.Infof("discovered %d aircraft across %d airlines", total, len(airlines))

	// Phase 3: detail pages, merged in completion order.
	for _, airline := range airlines {
		for _, aircraft := range airline.Aircrafts {
			e.Scheduler.Submit(seeds.DetailRequest(e.BaseURL, airline, aircraft, e.Airports))
		}
	}
	var rows []report.Row
	for done := 0; done < total; done++ {
		res, err := e.next(ctx, out)
		if err != nil {
			// The failing task's contribution is discarded; rows
			// accumulated before teardown survive.
			return rows, err
		}
		for _, item := range res.Items {
			detail, ok := item.(seeds.DetailResult)
			if !ok {
				continue
			}
			events := sequencer.Sequence(detail.Aircraft.Flights)
			rows = append(rows, e.Builder.Rows(detail.Airline, detail.Aircraft, events)...)
		}
		e.Notifier.Notify(types.Progress{
			Phase:     "details",
			Airlines:  len(airlines),
			Fleets:    len(airlines),
			Aircrafts: done + 1,
			Total:     total,
			Rows:      len(rows),
		})
	}
	log.Infof("crawl complete: %d rows, %d airports", len(rows), e.Airports.Len())
	return rows, nil
}

// next waits for one task's result, failing the run on the first fatal
// fault.
func (e *Engine) next(ctx context.Context, out <-chan result) (types.ParseResult, error) {
	select {
	case <-ctx.Done():
		return types.ParseResult{}, ctx.Err()
	case res := <-out:
		if res.err != nil {
			return types.ParseResult{}, res.err
		}
		return res.parsed, nil
	}
}
