// Package llm is the Go-side client for the LLM sidecar. Workflows talk to
// the Client interface; the gRPC implementation lives in grpc.go and tests
// substitute in-process fakes.
package llm

import (
	"context"
)

// Client is the interface workflows use for model calls. Generate returns a
// channel of chunks that closes when the stream completes; provider errors
// are delivered as ErrorChunk values, not channel errors.
type Client interface {
	Generate(ctx context.Context, req *Request) (<-chan Chunk, error)
	Close() error
}

// Request is one model call.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string

	// ImageURL optionally attaches an image (public URL).
	ImageURL string

	// ResponseSchema switches the sidecar into structured mode: the stream
	// carries accumulated object snapshots instead of raw text.
	ResponseSchema string

	// MaxOutputTokens caps the response. Zero means provider default.
	MaxOutputTokens int
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText   ChunkType = "text"
	ChunkTypeObject ChunkType = "object"
	ChunkTypeUsage  ChunkType = "usage"
	ChunkTypeError  ChunkType = "error"
	ChunkTypeDone   ChunkType = "done"
)

// TextChunk is an incremental piece of a free-text response.
type TextChunk struct{ Content string }

// ObjectChunk carries the accumulated partial object JSON in structured
// mode. Each snapshot supersedes the previous one.
type ObjectChunk struct{ JSON string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the provider.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

// DoneChunk marks the end of a successful stream.
type DoneChunk struct{}

func (c *TextChunk) chunkType() ChunkType   { return ChunkTypeText }
func (c *ObjectChunk) chunkType() ChunkType { return ChunkTypeObject }
func (c *UsageChunk) chunkType() ChunkType  { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType  { return ChunkTypeError }
func (c *DoneChunk) chunkType() ChunkType   { return ChunkTypeDone }
