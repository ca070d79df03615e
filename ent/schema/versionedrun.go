package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VersionedRun holds the schema definition for the VersionedRun entity: one
// user-visible attempt at producing a resource's artifact. Versions are
// monotone per resource; at most one row per resource may be streaming.
type VersionedRun struct {
	ent.Schema
}

// Fields of the VersionedRun.
func (VersionedRun) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("resource_kind").
			Values("video", "transcript", "super").
			Immutable(),
		field.String("resource_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.Enum("status").
			Values("streaming", "completed", "failed").
			Default("streaming"),
		field.String("workflow_run_id").
			Optional().
			Nillable().
			Comment("Backing engine run; written after the run is started"),
		field.String("namespace").
			Optional().
			Comment("Sub-stream label when the backing run is shared (process)"),
		field.Text("additional_instructions").
			Optional(),
		field.JSON("result_json", json.RawMessage{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the VersionedRun.
func (VersionedRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_kind", "resource_id", "version").
			Unique(),

		// At most one streaming attempt per resource
		index.Fields("resource_kind", "resource_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'streaming'")),

		// Version listings (descending in queries)
		index.Fields("resource_kind", "resource_id", "created_at"),
	}
}
