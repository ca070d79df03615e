package llm

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/recapd/recapd/proto"
)

// GRPCClient implements Client by calling the LLM sidecar via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a gRPC LLM client.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends one request and returns a channel of chunks.
func (c *GRPCClient) Generate(ctx context.Context, req *Request) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: true}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(req *Request) *llmv1.GenerateRequest {
	return &llmv1.GenerateRequest{
		Model:           req.Model,
		SystemPrompt:    req.SystemPrompt,
		UserPrompt:      req.UserPrompt,
		ImageUrl:        req.ImageURL,
		ResponseSchema:  req.ResponseSchema,
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}
}

func fromProtoResponse(resp *llmv1.GenerateResponse) Chunk {
	switch c := resp.Content.(type) {
	case *llmv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *llmv1.GenerateResponse_Object:
		return &ObjectChunk{JSON: c.Object.Json}
	case *llmv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  int(c.Usage.InputTokens),
			OutputTokens: int(c.Usage.OutputTokens),
			TotalTokens:  int(c.Usage.TotalTokens),
		}
	case *llmv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Retryable: c.Error.Retryable,
		}
	case *llmv1.GenerateResponse_Done:
		return &DoneChunk{}
	default:
		return nil
	}
}
