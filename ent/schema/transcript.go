package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/recapd/recapd/pkg/models"
)

// Transcript holds the schema definition for the Transcript entity: a cached
// fetch from the external transcript API, one row per video.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("video_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("channel_name"),
		field.Text("description").
			Optional(),
		field.JSON("segments", []models.TranscriptSegment{}).
			Comment("Ordered caption segments with start/end seconds"),
		field.Time("fetched_at").
			Default(time.Now),
	}
}

// Indexes of the Transcript.
func (Transcript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id").
			Unique(),
	}
}
