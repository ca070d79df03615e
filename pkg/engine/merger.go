package engine

import (
	"context"
	"sync"
)

// TaggedEvent is one event of a merged stream, labelled with the name of the
// source it came from.
type TaggedEvent struct {
	Source string
	Event  *Event
}

// SourceStream names one event stream for merging.
type SourceStream struct {
	Name   string
	Events <-chan *Event
}

// Merge fans N named event streams into one channel. Sources are independent:
// one closing (or its run failing) never stops delivery from the others. The
// merged channel closes once every source has closed or ctx ends.
func Merge(ctx context.Context, sources ...SourceStream) <-chan *TaggedEvent {
	out := make(chan *TaggedEvent, readBuffer)

	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src SourceStream) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-src.Events:
					if !ok {
						return
					}
					select {
					case out <- &TaggedEvent{Source: src.Name, Event: ev}:
					case <-ctx.Done():
						return
					}
				}
			}
		}(src)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
