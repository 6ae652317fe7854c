package scheduler

import (
	"errors"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// SimpleScheduler dispatches requests over a shared channel. Submit never
// blocks the caller, so the collector can seed a whole phase before any
// worker picks a request up.
type SimpleScheduler struct {
	requestChan chan types.Request
}

func (s *SimpleScheduler) ConfigureRequestChan(channel chan types.Request) {
	s.requestChan = channel
}

func (s *SimpleScheduler) Submit(req types.Request) {
	if s.requestChan == nil {
		panic(errors.New("before submit request to scheduler, you must" +
			" configure the request-channel for this scheduler"))
	}
	go func() {
		s.requestChan <- req
	}()
}
