package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/dextertanyj/flight-radar-scrapper/types"
)

// ConsolePrintNotifier prints the crawl's progress trace to stdout.
type ConsolePrintNotifier struct {
	progressChan chan types.Progress
}

func NewConsolePrintNotifier() *ConsolePrintNotifier {
	return &ConsolePrintNotifier{
		progressChan: make(chan types.Progress, 100),
	}
}

// Notify hands a sample to the print loop. Samples are dropped rather than
// blocking a worker when the loop falls behind.
func (o *ConsolePrintNotifier) Notify(p types.Progress) {
	select {
	case o.progressChan <- p:
	default:
	}
}

func (o *ConsolePrintNotifier) Run(ctx context.Context) {
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case p := <-o.progressChan:
			fmt.Printf("\r%v phase:%s airlines:%d fleets:%d aircraft:%d/%d rows:%d",
				time.Since(start).Truncate(time.Second),
				p.Phase, p.Airlines, p.Fleets, p.Aircrafts, p.Total, p.Rows)
		}
	}
}
