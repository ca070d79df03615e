package config

import "time"

// LLMConfig holds sidecar connection settings and per-task model selection.
// The sidecar address comes from LLM_GRPC_ADDR; models are YAML tunables.
type LLMConfig struct {
	// GRPCAddr is the LLM sidecar address (host:port).
	GRPCAddr string `yaml:"-"`

	// AnalysisModel generates dynamic-analysis schemas and content.
	AnalysisModel string `yaml:"analysis_model"`

	// SlideModel generates per-slide markdown from frame images.
	SlideModel string `yaml:"slide_model"`

	// SynthesisModel generates the super-analysis report.
	SynthesisModel string `yaml:"synthesis_model"`

	// MaxOutputTokens caps generation length per request.
	MaxOutputTokens int `yaml:"max_output_tokens"`

	// RequestTimeout bounds a single streaming generation.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		AnalysisModel:   "gemini-2.5-pro",
		SlideModel:      "gemini-2.5-flash",
		SynthesisModel:  "gemini-2.5-pro",
		MaxOutputTokens: 65536,
		RequestTimeout:  10 * time.Minute,
	}
}
