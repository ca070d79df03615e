package llmv1

import (
	"context"

	"google.golang.org/grpc"
)

const llmServiceGenerateMethod = "/recapd.llm.v1.LLMService/Generate"

var llmServiceGenerateStreamDesc = grpc.StreamDesc{
	StreamName:    "Generate",
	ServerStreams: true,
}

// LLMServiceClient is the client API for the LLMService sidecar.
type LLMServiceClient interface {
	// Generate streams the model response for one request.
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (LLMService_GenerateClient, error)
}

// LLMService_GenerateClient is the typed receive side of a Generate stream.
type LLMService_GenerateClient interface {
	Recv() (*GenerateResponse, error)
	grpc.ClientStream
}

type lLMServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLLMServiceClient creates a client over an established connection.
func NewLLMServiceClient(cc grpc.ClientConnInterface) LLMServiceClient {
	return &lLMServiceClient{cc: cc}
}

func (c *lLMServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (LLMService_GenerateClient, error) {
	stream, err := c.cc.NewStream(ctx, &llmServiceGenerateStreamDesc, llmServiceGenerateMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &lLMServiceGenerateClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type lLMServiceGenerateClient struct {
	grpc.ClientStream
}

func (x *lLMServiceGenerateClient) Recv() (*GenerateResponse, error) {
	m := new(GenerateResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
