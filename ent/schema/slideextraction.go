package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SlideExtraction holds the schema definition for the SlideExtraction entity:
// the per-video extraction lifecycle row. `run_id` doubles as the dispatch
// claim: it is CAS-updated from NULL to a placeholder before the engine run
// exists, so only one caller ever triggers the external extractor.
type SlideExtraction struct {
	ent.Schema
}

// Fields of the SlideExtraction.
func (SlideExtraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("video_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("idle", "in_progress", "completed", "failed").
			Default("idle"),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Claim placeholder, then the real engine run id"),
		field.Int("total_slides").
			Default(0),
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

// Indexes of the SlideExtraction.
func (SlideExtraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id").
			Unique(),
		index.Fields("status"),
	}
}
