// Package extractor is the client for the external slide-extraction service:
// job triggering, SSE job monitoring, and the manifest it leaves in object
// storage.
package extractor

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/engine"
)

// Job statuses reported over the monitor stream. Non-terminal statuses
// (pending, downloading, extracting, uploading) are forwarded verbatim.
const (
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// JobUpdate is one frame of the job monitor stream.
type JobUpdate struct {
	Status      string   `json:"status"`
	Progress    *float64 `json:"progress,omitempty"`
	Message     string   `json:"message,omitempty"`
	MetadataURI string   `json:"metadata_uri,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// DuplicateRef points a frame at the earlier frame it duplicates.
type DuplicateRef struct {
	SegmentIndex  int    `json:"segment_index"`
	FramePosition string `json:"frame_position"`
}

// Frame is one captured frame of a manifest segment.
type Frame struct {
	FrameID        string        `json:"frame_id"`
	SourceURI      string        `json:"source_uri"`
	HasText        bool          `json:"has_text"`
	TextConfidence float64       `json:"text_confidence"`
	DuplicateOf    *DuplicateRef `json:"duplicate_of,omitempty"`
}

// Segment is one detected slide segment.
type Segment struct {
	Index        int     `json:"index"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	Kind         string  `json:"kind"` // static or motion
	FirstFrame   *Frame  `json:"first_frame"`
	LastFrame    *Frame  `json:"last_frame"`
}

// Manifest is the extraction result written to object storage.
type Manifest struct {
	VideoID  string    `json:"video_id"`
	Segments []Segment `json:"segments"`
}

// Client talks to the extraction service over HTTP with bearer auth.
type Client struct {
	baseURL        string
	token          string
	trigger        *http.Client
	monitor        *http.Client
	monitorTimeout time.Duration
}

// NewClient creates an extractor client. The monitor client carries no
// request timeout of its own; callers bound the SSE stream with a context.
func NewClient(cfg *config.ExtractorConfig) *Client {
	return &Client{
		baseURL:        cfg.BaseURL,
		token:          cfg.Token,
		trigger:        &http.Client{Timeout: cfg.TriggerTimeout},
		monitor:        &http.Client{},
		monitorTimeout: cfg.MonitorTimeout,
	}
}

// MonitorTimeout is the configured upper bound for one job monitor stream.
func (c *Client) MonitorTimeout() time.Duration {
	return c.monitorTimeout
}

// Trigger starts an extraction job for a video and returns the job id.
// Client-side rejections (bad video id, auth) are fatal; everything else is
// transient.
func (c *Client) Trigger(ctx context.Context, videoID string) (string, error) {
	body, err := json.Marshal(map[string]string{"video_id": videoID})
	if err != nil {
		return "", fmt.Errorf("failed to marshal job request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build job request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.trigger.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor job request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", engine.FromHTTPStatus(resp.StatusCode,
			fmt.Errorf("extractor returned %d: %s", resp.StatusCode, data))
	}

	var out struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode job response: %w", err)
	}
	if out.JobID == "" {
		return "", errors.New("extractor returned an empty job id")
	}
	return out.JobID, nil
}

// Monitor follows a job's SSE stream until it reports a terminal status,
// invoking onUpdate for each frame. It returns the manifest URI of a
// completed job; a failed job, or a completion with no manifest, is fatal
// (re-triggering the same video yields the same outcome).
func (c *Client) Monitor(ctx context.Context, jobID string, onUpdate func(JobUpdate)) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jobs/"+jobID+"/events", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build monitor request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.monitor.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor monitor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", engine.FromHTTPStatus(resp.StatusCode,
			fmt.Errorf("extractor monitor returned %d: %s", resp.StatusCode, data))
	}

	reader := bufio.NewReader(resp.Body)
	for {
		data, err := readSSEData(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errors.New("extractor stream closed before job finished")
			}
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", fmt.Errorf("extractor stream read failed: %w", err)
		}

		var update JobUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			return "", fmt.Errorf("failed to decode job update: %w", err)
		}
		if onUpdate != nil {
			onUpdate(update)
		}

		switch update.Status {
		case JobStatusCompleted:
			if update.MetadataURI == "" {
				return "", engine.Fatalf("extraction job %s completed without a manifest URI", jobID)
			}
			return update.MetadataURI, nil
		case JobStatusFailed:
			return "", engine.Fatalf("extraction job %s failed: %s", jobID, update.Error)
		}
	}
}

// readSSEData reads one SSE event's accumulated data payload.
func readSSEData(reader *bufio.Reader) ([]byte, error) {
	var data []byte
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(data) == 0 {
				continue
			}
			return data, nil
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		if after, ok := strings.CutPrefix(line, "data:"); ok {
			if len(data) > 0 {
				data = append(data, '\n')
			}
			data = append(data, strings.TrimPrefix(after, " ")...)
		}
	}
}

// ParseManifest decodes and sanity-checks a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	for _, seg := range m.Segments {
		if seg.FirstFrame == nil || seg.LastFrame == nil {
			return nil, fmt.Errorf("manifest segment %d is missing frames", seg.Index)
		}
	}
	return &m, nil
}
