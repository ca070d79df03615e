// Package transcriptapi is the client for the external transcript source API.
package transcriptapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/models"
)

// Track is one language track of a fetched transcript.
type Track struct {
	Language   string                     `json:"language"`
	Transcript []models.TranscriptSegment `json:"transcript"`
}

// Video is one fetched transcript record.
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	ChannelName string  `json:"channelName"`
	Description string  `json:"description"`
	Tracks      []Track `json:"tracks"`
}

// Client talks to the transcript API over HTTP with bearer auth.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a transcript API client.
func NewClient(cfg *config.TranscriptAPIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch retrieves the transcript record for one video. A video the API does
// not know is a fatal condition; 5xx and transport errors are transient and
// surface as-is for the caller's retry policy.
func (c *Client) Fetch(ctx context.Context, videoID string) (*Video, error) {
	body, err := json.Marshal(map[string][]string{"ids": {videoID}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcripts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build transcript request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, engine.FromHTTPStatus(resp.StatusCode,
			fmt.Errorf("transcript API returned %d: %s", resp.StatusCode, data))
	}

	var videos []Video
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return nil, fmt.Errorf("failed to decode transcript response: %w", err)
	}
	if len(videos) == 0 {
		return nil, engine.Fatalf("no transcript available for video %s", videoID)
	}
	return &videos[0], nil
}
