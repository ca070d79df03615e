package config

import "time"

// ClientsConfig groups the external HTTP dependencies.
type ClientsConfig struct {
	TranscriptAPI *TranscriptAPIConfig
	Extractor     *ExtractorConfig
}

// TranscriptAPIConfig configures the external transcript source API.
// BaseURL and Token come from TRANSCRIPT_API_URL / TRANSCRIPT_API_TOKEN.
type TranscriptAPIConfig struct {
	BaseURL string        `yaml:"-"`
	Token   string        `yaml:"-"`
	Timeout time.Duration `yaml:"timeout"`
}

// ExtractorConfig configures the external slide-extraction service.
// BaseURL and Token come from EXTRACTOR_API_URL / EXTRACTOR_API_TOKEN.
type ExtractorConfig struct {
	BaseURL string `yaml:"-"`
	Token   string `yaml:"-"`

	// TriggerTimeout bounds the job-trigger POST.
	TriggerTimeout time.Duration `yaml:"trigger_timeout"`

	// MonitorTimeout bounds how long the job SSE stream is followed before
	// the extraction is considered stuck.
	MonitorTimeout time.Duration `yaml:"monitor_timeout"`
}

// DefaultClientsConfig returns the built-in client defaults.
func DefaultClientsConfig() *ClientsConfig {
	return &ClientsConfig{
		TranscriptAPI: &TranscriptAPIConfig{
			Timeout: 30 * time.Second,
		},
		Extractor: &ExtractorConfig{
			TriggerTimeout: 30 * time.Second,
			MonitorTimeout: 20 * time.Minute,
		},
	}
}

// StorageConfig groups the two S3-compatible stores: the private object store
// the extractor writes manifests and frames to, and the public blob store
// slide images are served from. All values come from the environment.
type StorageConfig struct {
	ObjectStore *S3Config
	BlobStore   *S3Config

	// BlobPublicBaseURL is the public URL prefix for uploaded blob keys.
	BlobPublicBaseURL string
}

// S3Config holds connection settings for one S3-compatible endpoint.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}
