package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// recapdYAMLConfig represents the recapd.yaml file structure. Every section
// is optional; unset values fall back to built-in defaults.
type recapdYAMLConfig struct {
	Server        *ServerConfig        `yaml:"server"`
	Engine        *EngineConfig        `yaml:"engine"`
	LLM           *LLMConfig           `yaml:"llm"`
	TranscriptAPI *TranscriptAPIConfig `yaml:"transcript_api"`
	Extractor     *ExtractorConfig     `yaml:"extractor"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load recapd.yaml from configDir (missing file means defaults)
//  2. Expand {{.VAR}} environment references
//  3. Merge user values onto built-in defaults
//  4. Read endpoints and credentials from the environment
//  5. Validate; missing required environment variables are fatal
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	yamlCfg, err := loadYAML(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg := &Config{
		configDir: configDir,
		Server:    DefaultServerConfig(),
		Engine:    DefaultEngineConfig(),
		LLM:       DefaultLLMConfig(),
		Clients:   DefaultClientsConfig(),
	}

	// Merge user-provided sections onto defaults (non-zero values override).
	if yamlCfg.Server != nil {
		if err := mergo.Merge(cfg.Server, yamlCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	if yamlCfg.Engine != nil {
		if err := mergo.Merge(cfg.Engine, yamlCfg.Engine, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge engine config: %w", err)
		}
	}
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(cfg.LLM, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	if yamlCfg.TranscriptAPI != nil {
		if err := mergo.Merge(cfg.Clients.TranscriptAPI, yamlCfg.TranscriptAPI, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge transcript_api config: %w", err)
		}
	}
	if yamlCfg.Extractor != nil {
		if err := mergo.Merge(cfg.Clients.Extractor, yamlCfg.Extractor, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge extractor config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Engine.WorkerCount,
		"port", cfg.Server.Port,
		"analysis_model", cfg.LLM.AnalysisModel)

	return cfg, nil
}

// loadYAML reads and parses recapd.yaml. A missing file is not an error —
// all tunables have defaults.
func loadYAML(configDir string) (*recapdYAMLConfig, error) {
	var cfg recapdYAMLConfig

	path := filepath.Join(configDir, "recapd.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No recapd.yaml found, using built-in defaults", "path", path)
			return &cfg, nil
		}
		return nil, NewLoadError("recapd.yaml", err)
	}

	data = ExpandEnv(data)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewLoadError("recapd.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	return &cfg, nil
}

// requiredEnv maps environment variables to setters on the config. Absence
// of any of these is a fatal startup error.
func applyEnv(cfg *Config) error {
	var missing []string

	require := func(name string) string {
		v := os.Getenv(name)
		if v == "" {
			missing = append(missing, name)
		}
		return v
	}

	cfg.DatabaseURL = require("DATABASE_URL")
	cfg.LLM.GRPCAddr = require("LLM_GRPC_ADDR")
	cfg.Clients.TranscriptAPI.BaseURL = require("TRANSCRIPT_API_URL")
	cfg.Clients.TranscriptAPI.Token = require("TRANSCRIPT_API_TOKEN")
	cfg.Clients.Extractor.BaseURL = require("EXTRACTOR_API_URL")
	cfg.Clients.Extractor.Token = require("EXTRACTOR_API_TOKEN")

	cfg.Storage = &StorageConfig{
		ObjectStore: &S3Config{
			Endpoint:  require("OBJECT_STORE_ENDPOINT"),
			Region:    envOr("OBJECT_STORE_REGION", "us-east-1"),
			AccessKey: require("OBJECT_STORE_ACCESS_KEY"),
			SecretKey: require("OBJECT_STORE_SECRET_KEY"),
			Bucket:    require("OBJECT_STORE_BUCKET"),
		},
		BlobStore: &S3Config{
			Endpoint:  require("BLOB_STORE_ENDPOINT"),
			Region:    envOr("BLOB_STORE_REGION", "us-east-1"),
			AccessKey: require("BLOB_STORE_ACCESS_KEY"),
			SecretKey: require("BLOB_STORE_SECRET_KEY"),
			Bucket:    require("BLOB_STORE_BUCKET"),
		},
		BlobPublicBaseURL: require("BLOB_PUBLIC_BASE_URL"),
	}

	cfg.PodID = os.Getenv("POD_ID")
	if cfg.PodID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "recapd-unknown"
		}
		cfg.PodID = hostname
	}

	if port := os.Getenv("PORT"); port != "" {
		if _, err := fmt.Sscanf(port, "%d", &cfg.Server.Port); err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}

	if len(missing) > 0 {
		return &MissingEnvError{Vars: missing}
	}
	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// validate checks cross-field constraints after env application.
func validate(cfg *Config) error {
	if cfg.Engine.WorkerCount < 1 {
		return fmt.Errorf("engine.worker_count must be at least 1, got %d", cfg.Engine.WorkerCount)
	}
	if cfg.Engine.MaxRecoveryAttempts < 0 {
		return fmt.Errorf("engine.max_recovery_attempts must not be negative")
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.Engine.OrphanThreshold <= cfg.Engine.HeartbeatInterval {
		return fmt.Errorf("engine.orphan_threshold (%s) must exceed heartbeat_interval (%s)",
			cfg.Engine.OrphanThreshold, cfg.Engine.HeartbeatInterval)
	}
	return nil
}
