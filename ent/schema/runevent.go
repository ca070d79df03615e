package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the RunEvent entity: one entry in a
// run's append-only event log. `index` is dense per run starting at 0; the
// unique (run_id, index) constraint is what makes append crash-retry safe.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.Int("index").
			Immutable().
			Comment("Dense per-run position starting at 0"),
		field.Enum("kind").
			Values("step_started", "step_result", "step_error", "emit", "run_terminal").
			Immutable(),
		field.String("step_id").
			Optional().
			Immutable().
			Comment("Memoization key part; emits carry their scope id here too"),
		field.Int("call_ordinal").
			Optional().
			Immutable().
			Comment("Zero-based occurrence of step_id within the run"),
		field.String("namespace").
			Optional().
			Immutable().
			Comment("Sub-stream label on emit events"),
		field.JSON("payload", json.RawMessage{}).
			Optional().
			Immutable(),
		field.Bool("retriable").
			Optional().
			Nillable().
			Immutable().
			Comment("step_error only: false means the error was fatal"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "index").
			Unique(),
		// Trace lookups by memoization key
		index.Fields("run_id", "step_id", "call_ordinal"),
	}
}
