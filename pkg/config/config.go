package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application. Tunables come from recapd.yaml; endpoints
// and credentials come from the environment.
type Config struct {
	configDir string

	// DatabaseURL is the Postgres connection string (DATABASE_URL).
	DatabaseURL string

	// PodID identifies this replica for run claiming and orphan detection.
	PodID string

	Server  *ServerConfig
	Engine  *EngineConfig
	LLM     *LLMConfig
	Clients *ClientsConfig
	Storage *StorageConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
