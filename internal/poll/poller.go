// Package poll keeps dashboard data approximately fresh against a backend
// that offers no push channel.
package poll

import (
	"context"
	"errors"
	"log"
	"time"
)

// Poller invokes fetch immediately on Run and then once per interval.
// Ticks are serialized: a tick that lands while a fetch is still in flight
// is skipped rather than queued, so a slow backend never piles up
// overlapping requests. A failed fetch is logged and the loop keeps going;
// dashboards tolerate transient staleness better than a dead widget.
type Poller struct {
	name     string
	interval time.Duration
	fetch    func(ctx context.Context) error
}

func New(name string, interval time.Duration, fetch func(ctx context.Context) error) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		fetch:    fetch,
	}
}

// Run blocks until ctx is cancelled. The fetch context derives from ctx, so
// teardown aborts an in-flight request instead of letting its result land
// after the consumer is gone.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
			// Drop the tick that may have accumulated while fetching.
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.fetch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("poller %s: fetch: %v", p.name, err)
	}
}
