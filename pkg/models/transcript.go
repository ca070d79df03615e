package models

// TranscriptSegment is one caption segment of a video transcript.
// Start/End are offsets in seconds from the beginning of the video.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptData is the normalized result of a transcript fetch, either from
// the cache or from the external transcript API.
type TranscriptData struct {
	VideoID     string              `json:"videoId"`
	Title       string              `json:"title"`
	ChannelName string              `json:"channelName"`
	Description string              `json:"description,omitempty"`
	Segments    []TranscriptSegment `json:"segments"`
}
