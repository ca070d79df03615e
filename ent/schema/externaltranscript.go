package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ExternalTranscript holds the schema definition for the ExternalTranscript
// entity: user-supplied transcript text analyzed without a backing video.
type ExternalTranscript struct {
	ent.Schema
}

// Fields of the ExternalTranscript.
func (ExternalTranscript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("title").
			Optional(),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
