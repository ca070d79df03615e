package llmv1

import (
	"google.golang.org/protobuf/runtime/protoimpl"
)

// GenerateRequest is one model call.
type GenerateRequest struct {
	Model           string `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	SystemPrompt    string `protobuf:"bytes,2,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	UserPrompt      string `protobuf:"bytes,3,opt,name=user_prompt,json=userPrompt,proto3" json:"user_prompt,omitempty"`
	ImageUrl        string `protobuf:"bytes,4,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	ResponseSchema  string `protobuf:"bytes,5,opt,name=response_schema,json=responseSchema,proto3" json:"response_schema,omitempty"`
	MaxOutputTokens int32  `protobuf:"varint,6,opt,name=max_output_tokens,json=maxOutputTokens,proto3" json:"max_output_tokens,omitempty"`
}

func (m *GenerateRequest) Reset()         { *m = GenerateRequest{} }
func (m *GenerateRequest) String() string { return messageString(m) }
func (*GenerateRequest) ProtoMessage()    {}

// TextDelta is an incremental piece of a free-text response.
type TextDelta struct {
	Content string `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *TextDelta) Reset()         { *m = TextDelta{} }
func (m *TextDelta) String() string { return messageString(m) }
func (*TextDelta) ProtoMessage()    {}

// ObjectSnapshot carries the accumulated partial object JSON in structured
// mode. Each snapshot supersedes the previous one.
type ObjectSnapshot struct {
	Json string `protobuf:"bytes,1,opt,name=json,proto3" json:"json,omitempty"`
}

func (m *ObjectSnapshot) Reset()         { *m = ObjectSnapshot{} }
func (m *ObjectSnapshot) String() string { return messageString(m) }
func (*ObjectSnapshot) ProtoMessage()    {}

// Usage reports token consumption for the call.
type Usage struct {
	InputTokens  int32 `protobuf:"varint,1,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens int32 `protobuf:"varint,2,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	TotalTokens  int32 `protobuf:"varint,3,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
}

func (m *Usage) Reset()         { *m = Usage{} }
func (m *Usage) String() string { return messageString(m) }
func (*Usage) ProtoMessage()    {}

// Error signals a provider failure.
type Error struct {
	Message   string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Retryable bool   `protobuf:"varint,2,opt,name=retryable,proto3" json:"retryable,omitempty"`
}

func (m *Error) Reset()         { *m = Error{} }
func (m *Error) String() string { return messageString(m) }
func (*Error) ProtoMessage()    {}

// Done marks the end of a successful stream.
type Done struct{}

func (m *Done) Reset()         { *m = Done{} }
func (m *Done) String() string { return messageString(m) }
func (*Done) ProtoMessage()    {}

// GenerateResponse is one frame of the response stream.
type GenerateResponse struct {
	// Content is exactly one of the chunk variants below.
	Content isGenerateResponse_Content `protobuf_oneof:"content"`
}

func (m *GenerateResponse) Reset()         { *m = GenerateResponse{} }
func (m *GenerateResponse) String() string { return messageString(m) }
func (*GenerateResponse) ProtoMessage()    {}

type isGenerateResponse_Content interface {
	isGenerateResponse_Content()
}

type GenerateResponse_Text struct {
	Text *TextDelta `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type GenerateResponse_Object struct {
	Object *ObjectSnapshot `protobuf:"bytes,2,opt,name=object,proto3,oneof"`
}

type GenerateResponse_Usage struct {
	Usage *Usage `protobuf:"bytes,3,opt,name=usage,proto3,oneof"`
}

type GenerateResponse_Error struct {
	Error *Error `protobuf:"bytes,4,opt,name=error,proto3,oneof"`
}

type GenerateResponse_Done struct {
	Done *Done `protobuf:"bytes,5,opt,name=done,proto3,oneof"`
}

func (*GenerateResponse_Text) isGenerateResponse_Content()   {}
func (*GenerateResponse_Object) isGenerateResponse_Content() {}
func (*GenerateResponse_Usage) isGenerateResponse_Content()  {}
func (*GenerateResponse_Error) isGenerateResponse_Content()  {}
func (*GenerateResponse_Done) isGenerateResponse_Content()   {}

// XXX_OneofWrappers lets the proto runtime discover the oneof variants.
func (*GenerateResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*GenerateResponse_Text)(nil),
		(*GenerateResponse_Object)(nil),
		(*GenerateResponse_Usage)(nil),
		(*GenerateResponse_Error)(nil),
		(*GenerateResponse_Done)(nil),
	}
}

func messageString(m interface{ Reset() }) string {
	return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(m))
}
