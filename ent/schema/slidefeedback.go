package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SlideFeedback holds the schema definition for the SlideFeedback entity:
// the user's frame picks per slide, consumed when deriving analysis targets.
type SlideFeedback struct {
	ent.Schema
}

// Fields of the SlideFeedback.
func (SlideFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("video_id").
			Immutable(),
		field.Int("slide_number").
			Immutable(),
		field.Bool("is_first_frame_picked").
			Default(false),
		field.Bool("is_last_frame_picked").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SlideFeedback.
func (SlideFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id", "slide_number").
			Unique(),
	}
}
