package domain

import "runtime"

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName = "graphcache.yaml"

// Log levels accepted by LogConfig.Level.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
)

// Config is the resolved graphcache configuration.
type Config struct {
	Log       LogConfig
	Telemetry TelemetryConfig
	Cache     CacheConfig
	// Path is the file the configuration was read from, empty for defaults.
	Path string
}

// LogConfig configures the logger adapter.
type LogConfig struct {
	Level string
	JSON  bool
}

// TelemetryConfig configures tracing.
type TelemetryConfig struct {
	Enabled bool
}

// CacheConfig configures the cache engine.
type CacheConfig struct {
	// FlushConcurrency bounds how many watcher selections are reconstructed in parallel
	// during one flush.
	FlushConcurrency int
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Log:   LogConfig{Level: LogLevelInfo},
		Cache: CacheConfig{FlushConcurrency: runtime.GOMAXPROCS(0)},
	}
}
