package publishers

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Fanout delivers each alert to every configured sink. Sinks are independent,
// so delivery runs concurrently; a slow webhook does not hold back the queue
// sinks.
type Fanout struct {
	sinks []Publisher
}

// NewFanout builds a dispatcher over the given sinks, dropping nil entries.
func NewFanout(sinks []Publisher) *Fanout {
	kept := make([]Publisher, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Fanout{sinks: kept}
}

// Publish fans the alert out and waits for every sink to answer. It reports
// how many sinks accepted the alert alongside the joined failures.
func (f *Fanout) Publish(ctx context.Context, evt Event) (int, error) {
	if f == nil || len(f.sinks) == 0 {
		return 0, nil
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered int
		errs      []error
	)
	for _, sink := range f.sinks {
		wg.Add(1)
		go func(p Publisher) {
			defer wg.Done()
			err := p.Publish(ctx, evt)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s publisher[%s]: %w", p.Type(), p.ID(), err))
				return
			}
			delivered++
		}(sink)
	}
	wg.Wait()

	return delivered, errors.Join(errs...)
}

// Size returns the number of active sinks.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.sinks)
}
