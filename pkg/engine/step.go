package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/recapd/recapd/pkg/metrics"
)

// Default retry parameters. Per-step options override them; 4xx-style
// conditions bypass retries entirely via the Fatal marker.
const (
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 30 * time.Second
)

// StepOptions declares a step's retry policy.
type StepOptions struct {
	// MaxRetries is the transient retry budget after the first attempt.
	// Zero means a single attempt.
	MaxRetries int

	// InitialBackoff seeds the exponential backoff between attempts.
	InitialBackoff time.Duration

	// MaxBackoff caps the backoff interval.
	MaxBackoff time.Duration

	// Timeout bounds a single attempt. Zero means no per-attempt bound.
	Timeout time.Duration
}

// stepErrorPayload is the persisted form of a step failure.
type stepErrorPayload struct {
	Message string `json:"message"`
}

// Step executes a named unit of work with memoization against the run's
// trace. If a prior execution recorded a result for this (step_id,
// call_ordinal), the body is skipped and the stored value returned; a
// recorded fatal error is re-raised the same way. Otherwise the body runs
// under the step's retry policy, and its outcome is appended to the log
// before being returned.
//
// Return values must be JSON-serializable and step side effects must be
// idempotent: under crash recovery a step whose result was never recorded
// executes again.
func Step[T any](sc *StepContext, id string, opts StepOptions, body func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	stepID := sc.prefix + id
	ordinal := sc.rs.nextOrdinal(stepID)

	if rec, ok := sc.rs.record(stepID, ordinal); ok && !rec.isEmit {
		if rec.err != nil {
			return zero, rec.err
		}
		var v T
		if err := json.Unmarshal(rec.result, &v); err != nil {
			return zero, fmt.Errorf("failed to decode memoized result of step %s[%d]: %w", stepID, ordinal, err)
		}
		metrics.StepsMemoized.Inc()
		return v, nil
	}

	if err := sc.rs.checkFlags(); err != nil {
		return zero, err
	}

	if err := sc.rs.append(sc.ctx, &Event{
		Kind:        KindStepStarted,
		StepID:      stepID,
		CallOrdinal: ordinal,
	}); err != nil {
		return zero, fmt.Errorf("failed to record step start for %s: %w", stepID, err)
	}

	value, err := runWithRetry(sc, stepID, opts, body)
	if err != nil {
		// Cooperative signals propagate without a step_error record: the
		// step never completed and re-executes on resume.
		if err == errCancelRequested || err == errPauseRequested || sc.ctx.Err() != nil {
			return zero, err
		}
		retriable := !IsFatal(err)
		payload, merr := json.Marshal(stepErrorPayload{Message: err.Error()})
		if merr != nil {
			payload = []byte(`{"message":"unserializable step error"}`)
		}
		if aerr := sc.rs.append(sc.ctx, &Event{
			Kind:        KindStepError,
			StepID:      stepID,
			CallOrdinal: ordinal,
			Payload:     payload,
			Retriable:   &retriable,
		}); aerr != nil {
			slog.Error("Failed to record step error", "step_id", stepID, "error", aerr)
		}
		metrics.StepsExecuted.WithLabelValues("error").Inc()
		return zero, err
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		return zero, Fatalf("step %s returned an unserializable value: %v", stepID, err)
	}
	if err := sc.rs.append(sc.ctx, &Event{
		Kind:        KindStepResult,
		StepID:      stepID,
		CallOrdinal: ordinal,
		Payload:     serialized,
	}); err != nil {
		return zero, fmt.Errorf("failed to record result of step %s: %w", stepID, err)
	}
	metrics.StepsExecuted.WithLabelValues("success").Inc()
	return value, nil
}

// runWithRetry drives the attempts. Fatal errors and cooperative signals
// stop retrying immediately; transient errors back off exponentially until
// MaxRetries is exhausted.
func runWithRetry[T any](sc *StepContext, stepID string, opts StepOptions, body func(ctx context.Context) (T, error)) (T, error) {
	var value T

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = opts.InitialBackoff
	if b.InitialInterval <= 0 {
		b.InitialInterval = defaultInitialBackoff
	}
	b.MaxInterval = opts.MaxBackoff
	if b.MaxInterval <= 0 {
		b.MaxInterval = defaultMaxBackoff
	}
	b.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		if err := sc.rs.checkFlags(); err != nil {
			return backoff.Permanent(err)
		}
		attempt++
		if attempt > 1 {
			metrics.StepRetries.Inc()
			slog.Debug("Retrying step", "step_id", stepID, "attempt", attempt)
		}

		attemptCtx := sc.ctx
		var cancel context.CancelFunc
		if opts.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(sc.ctx, opts.Timeout)
			defer cancel()
		}

		v, err := body(attemptCtx)
		if err != nil {
			if IsFatal(err) || sc.ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		value = v
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(opts.MaxRetries)), sc.ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
