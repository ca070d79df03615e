// Package events provides the live event bus: run-log appends are broadcast
// via PostgreSQL NOTIFY/LISTEN for cross-pod distribution and fanned out to
// in-process subscribers by the Broker.
//
// Delivery contract: NOTIFY is a wake-up, not the source of truth. Every
// envelope carries the run id and log index; payloads that exceed the NOTIFY
// size limit are truncated to a marker and readers re-fetch the full row from
// the run_events table by (run_id, index). Readers also gap-fill from the
// table whenever indices skip, so lost notifications never lose events.
package events

import "encoding/json"

// NotifyLimit is the usable payload budget for pg_notify. PostgreSQL caps
// NOTIFY payloads at 8000 bytes; the margin covers channel-name overhead.
const NotifyLimit = 7900

// RunChannel returns the NOTIFY channel name for one run's log.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// Envelope is the NOTIFY payload for one appended log event. When Truncated
// is set, Event is absent and the subscriber must fetch the row by
// (RunID, Index).
type Envelope struct {
	RunID     string          `json:"run_id"`
	Index     int             `json:"index"`
	Truncated bool            `json:"truncated,omitempty"`
	Event     json.RawMessage `json:"event,omitempty"`
}

// EncodeEnvelope marshals an envelope for the given event JSON, applying the
// truncation rule.
func EncodeEnvelope(runID string, index int, eventJSON []byte) (string, error) {
	env := Envelope{RunID: runID, Index: index, Event: eventJSON}
	out, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	if len(out) <= NotifyLimit {
		return string(out), nil
	}
	out, err = json.Marshal(Envelope{RunID: runID, Index: index, Truncated: true})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
