package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/llm"
)

// collectStructured drains a structured-mode stream: each object snapshot is
// passed to onSnapshot (may be nil) and the final snapshot is returned.
// Provider errors map to the engine's fatal/transient split via Retryable.
func collectStructured(ctx context.Context, stream <-chan llm.Chunk, onSnapshot func(json string) error) (string, error) {
	var last string
	done := false
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case chunk, ok := <-stream:
			if !ok {
				if !done && last == "" {
					return "", errors.New("LLM stream ended without output")
				}
				return last, nil
			}
			switch c := chunk.(type) {
			case *llm.ObjectChunk:
				last = c.JSON
				if onSnapshot != nil {
					if err := onSnapshot(c.JSON); err != nil {
						return "", err
					}
				}
			case *llm.ErrorChunk:
				if c.Retryable {
					return "", fmt.Errorf("LLM error: %s", c.Message)
				}
				return "", engine.Fatalf("LLM error: %s", c.Message)
			case *llm.DoneChunk:
				done = true
			}
		}
	}
}

// collectText drains a free-text stream: deltas are passed to onDelta (may
// be nil) and the accumulated text is returned.
func collectText(ctx context.Context, stream <-chan llm.Chunk, onDelta func(delta string) error) (string, error) {
	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case chunk, ok := <-stream:
			if !ok {
				if b.Len() == 0 {
					return "", errors.New("LLM stream ended without output")
				}
				return b.String(), nil
			}
			switch c := chunk.(type) {
			case *llm.TextChunk:
				b.WriteString(c.Content)
				if onDelta != nil {
					if err := onDelta(c.Content); err != nil {
						return "", err
					}
				}
			case *llm.ErrorChunk:
				if c.Retryable {
					return "", fmt.Errorf("LLM error: %s", c.Message)
				}
				return "", engine.Fatalf("LLM error: %s", c.Message)
			}
		}
	}
}
