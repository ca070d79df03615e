package engine

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrLogSealed is returned by Append once a run_terminal event exists.
	ErrLogSealed = errors.New("event log is sealed")

	// ErrRunNotFound indicates an unknown run id.
	ErrRunNotFound = errors.New("run not found")

	// ErrWorkflowNotRegistered indicates a run references a workflow name
	// this binary does not know.
	ErrWorkflowNotRegistered = errors.New("workflow not registered")

	// ErrRunTerminal indicates an operation on a run that already reached a
	// terminal state.
	ErrRunTerminal = errors.New("run is in a terminal state")

	// errCancelRequested and errPauseRequested are context cancellation
	// causes set by the worker's heartbeat loop.
	errCancelRequested = errors.New("run cancellation requested")
	errPauseRequested  = errors.New("run pause requested")
)

// IsInterrupt reports whether an error is a cooperative cancel/pause signal
// or a context cancellation, i.e. the run is being interrupted rather than
// failing. Workflows use it to skip failure bookkeeping on interruption.
func IsInterrupt(err error) bool {
	return errors.Is(err, errCancelRequested) ||
		errors.Is(err, errPauseRequested) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// FatalError marks an error that must never be retried: 4xx responses from
// external dependencies, schema validation failures, data inconsistencies.
// The step executor records it with retriable=false and propagates it
// immediately.
type FatalError struct {
	Err error
}

// Error returns the underlying error message.
func (e *FatalError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps an error with the fatal marker. Fatal(nil) returns nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// Fatalf is Fatal over a formatted error.
func Fatalf(format string, args ...any) error {
	return &FatalError{Err: fmt.Errorf(format, args...)}
}

// IsFatal reports whether any error in the chain carries the fatal marker.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// FromHTTPStatus classifies an external dependency response: 4xx is fatal,
// everything else (5xx, transport errors already being errors) is transient.
func FromHTTPStatus(status int, err error) error {
	if err == nil {
		return nil
	}
	if status >= 400 && status < 500 {
		return Fatal(err)
	}
	return err
}

// StepError is the replayed form of a recorded step failure: the step body
// is not re-executed, the original message is re-raised instead.
type StepError struct {
	StepID      string
	CallOrdinal int
	Message     string
	Retriable   bool
}

// Error returns the recorded message.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %s[%d]: %s", e.StepID, e.CallOrdinal, e.Message)
}
