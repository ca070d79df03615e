package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Slide holds the schema definition for the Slide entity: one static segment
// of a video with its two candidate frames. Frame columns come in first_/last_
// pairs. A frame marked duplicate references an earlier slide's frame.
type Slide struct {
	ent.Schema
}

// Fields of the Slide.
func (Slide) Fields() []ent.Field {
	return []ent.Field{
		field.String("video_id").
			Immutable(),
		field.Int("slide_number").
			Immutable().
			Comment("Zero-based position within the video"),
		field.Float("start_seconds"),
		field.Float("end_seconds"),

		field.String("first_image_url").
			Optional().
			Nillable().
			Comment("Public URL after upload; nil when the upload failed"),
		field.String("first_source_uri").
			Optional(),
		field.Bool("first_has_text").
			Default(false),
		field.Float("first_text_confidence").
			Optional().
			Nillable(),
		field.String("first_upload_error").
			Optional().
			Nillable(),
		field.Int("first_duplicate_of_slide").
			Optional().
			Nillable().
			Comment("Must reference an earlier slide_number"),
		field.String("first_duplicate_of_frame").
			Optional().
			Nillable(),

		field.String("last_image_url").
			Optional().
			Nillable(),
		field.String("last_source_uri").
			Optional(),
		field.Bool("last_has_text").
			Default(false),
		field.Float("last_text_confidence").
			Optional().
			Nillable(),
		field.String("last_upload_error").
			Optional().
			Nillable(),
		field.Int("last_duplicate_of_slide").
			Optional().
			Nillable(),
		field.String("last_duplicate_of_frame").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Slide.
func (Slide) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id", "slide_number").
			Unique(),
	}
}
