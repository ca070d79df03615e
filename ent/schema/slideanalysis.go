package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SlideAnalysis holds the schema definition for the SlideAnalysis entity:
// LLM-generated markdown for one frame of one slide. Re-runs upsert on the
// composite key.
type SlideAnalysis struct {
	ent.Schema
}

// Fields of the SlideAnalysis.
func (SlideAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("video_id").
			Immutable(),
		field.Int("slide_number").
			Immutable(),
		field.Enum("frame_position").
			Values("first", "last").
			Immutable(),
		field.Text("markdown"),
		field.String("model").
			Optional().
			Comment("Model that produced the markdown"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SlideAnalysis.
func (SlideAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id", "slide_number", "frame_position").
			Unique(),
	}
}
