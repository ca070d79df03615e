package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SuperAnalysis holds the schema definition for the SuperAnalysis entity: the
// synthesized report combining transcript analysis, slide analyses and slide
// timing. One row per video, replaced on re-synthesis.
type SuperAnalysis struct {
	ent.Schema
}

// Fields of the SuperAnalysis.
func (SuperAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("video_id").
			Unique().
			Immutable(),
		field.Text("markdown"),
		field.String("model").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SuperAnalysis.
func (SuperAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id").
			Unique(),
	}
}
