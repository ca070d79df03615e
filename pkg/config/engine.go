package config

import "time"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host to bind. Empty means all interfaces.
	Host string `yaml:"host"`

	// Port for the HTTP API.
	Port int `yaml:"port"`

	// CORSAllowedOrigins are origins allowed on API responses.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// SSEHeartbeatInterval is how often idle streams receive a comment frame
	// to keep intermediaries from closing the connection.
	SSEHeartbeatInterval time.Duration `yaml:"sse_heartbeat_interval"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:                 8080,
		SSEHeartbeatInterval: 15 * time.Second,
	}
}

// EngineConfig contains workflow engine and worker pool configuration.
// These values control how runs are polled, claimed, and executed.
type EngineConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims pending runs.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often an executing worker refreshes the run's
	// heartbeat and re-checks the cancel/pause flags.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// RunTimeout is the maximum wall-clock time a single run execution may
	// take before its context is cancelled.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// reach a step boundary during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for runs whose worker
	// stopped heartbeating.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat before it
	// is re-queued for another worker.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxRecoveryAttempts bounds how many times an orphaned run is re-queued
	// before it is failed terminally.
	MaxRecoveryAttempts int `yaml:"max_recovery_attempts"`

	// StepRetryInitialBackoff seeds the step executor's exponential backoff.
	StepRetryInitialBackoff time.Duration `yaml:"step_retry_initial_backoff"`

	// StepRetryMaxBackoff caps the step executor's backoff interval.
	StepRetryMaxBackoff time.Duration `yaml:"step_retry_max_backoff"`
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		RunTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
		MaxRecoveryAttempts:     3,
		StepRetryInitialBackoff: 500 * time.Millisecond,
		StepRetryMaxBackoff:     30 * time.Second,
	}
}
