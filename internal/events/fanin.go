package events

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunAll runs every source concurrently while delivering their events
// through one buffered channel consumed by a single goroutine. The
// handler therefore sees one event at a time, so the trigger state it
// drives needs no locking. RunAll returns after every source has
// returned and the queue is drained.
func RunAll(ctx context.Context, sources []Source, handle func(Event)) error {
	queue := make(chan Event, 64)

	producers, pctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		src := src
		producers.Go(func() error {
			return src.Run(pctx, func(ev Event) {
				select {
				case queue <- ev:
				case <-pctx.Done():
				}
			})
		})
	}

	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		for ev := range queue {
			handle(ev)
		}
	}()

	err := producers.Wait()
	close(queue)
	<-consumed
	return err
}
