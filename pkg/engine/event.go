// Package engine implements the durable workflow runtime: per-run append-only
// event logs, memoized step execution, crash recovery by trace replay, and a
// worker pool that claims and executes runs.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// EventKind identifies the variant of a log event.
type EventKind string

// Event kinds. Values match the run_events.kind enum.
const (
	KindStepStarted EventKind = "step_started"
	KindStepResult  EventKind = "step_result"
	KindStepError   EventKind = "step_error"
	KindEmit        EventKind = "emit"
	KindRunTerminal EventKind = "run_terminal"
)

// Run states. Values match the workflow_runs.state enum.
const (
	StatePending   = "pending"
	StateRunning   = "running"
	StatePaused    = "paused"
	StateCompleted = "completed"
	StateFailed    = "failed"
	StateCancelled = "cancelled"
)

// IsTerminalState reports whether a run state is immutable.
func IsTerminalState(state string) bool {
	return state == StateCompleted || state == StateFailed || state == StateCancelled
}

// Event is one entry of a run's append-only log. Index is dense per run
// starting at 0.
type Event struct {
	RunID       string          `json:"runId"`
	Index       int             `json:"index"`
	Kind        EventKind       `json:"kind"`
	StepID      string          `json:"stepId,omitempty"`
	CallOrdinal int             `json:"callOrdinal,omitempty"`
	Namespace   string          `json:"namespace,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Retriable   *bool           `json:"retriable,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TerminalPayload is the payload of a run_terminal event.
type TerminalPayload struct {
	State   string          `json:"state"`
	Result  json.RawMessage `json:"result,omitempty"`
	Message string          `json:"message,omitempty"`
}

// StartStepID is the synthetic step seeding every run's log. Its payload
// carries the args digest so replay can verify it resumes the same inputs.
const StartStepID = "__start__"

// ArgsDigest returns the sha256 hex digest of a workflow name and its
// canonical args JSON. Used for engine-level run dedupe.
func ArgsDigest(workflow string, args json.RawMessage) string {
	h := sha256.New()
	h.Write([]byte(workflow))
	h.Write([]byte{0})
	h.Write(canonicalJSON(args))
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalJSON re-marshals JSON so key order and whitespace do not affect
// the digest. Invalid input digests as its raw bytes.
func canonicalJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return raw
	}
	out, err := json.Marshal(v)
	if err != nil {
		return raw
	}
	return out
}
