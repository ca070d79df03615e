package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for the WorkflowRun entity.
// One row per engine run; the run's event log lives in RunEvent.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("workflow_name").
			Immutable(),
		field.JSON("args", json.RawMessage{}).
			Immutable().
			Comment("Raw JSON arguments the run was started with"),
		field.String("args_digest").
			Immutable().
			Comment("sha256 of workflow name + canonical args JSON; dedupe key"),
		field.Enum("state").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("result", json.RawMessage{}).
			Optional().
			Comment("Workflow return value, set on completion"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Cooperative cancel flag checked between steps"),
		field.Bool("pause_requested").
			Default(false),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Int("recovery_attempts").
			Default(0).
			Comment("Times this run was re-queued after a lost worker"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the WorkflowRun.
func (WorkflowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("workflow_name"),

		// Worker claim ordering and orphan scans
		index.Fields("state", "created_at"),
		index.Fields("state", "last_heartbeat_at"),

		// At-most-one active run per (workflow, args) pair
		index.Fields("workflow_name", "args_digest").
			Unique().
			Annotations(entsql.IndexWhere("state IN ('pending', 'running', 'paused')")),
	}
}
