// Package llmv1 holds the Go bindings for the LLM sidecar service defined in
// llm.proto. The bindings are maintained by hand in the legacy message shape
// so the standard proto codec can derive descriptors from struct tags at
// runtime without a protoc step; keep them in sync with llm.proto.
//
// TODO: switch to protoc-generated bindings once protoc and the Go plugins
// are part of the build image.
package llmv1
