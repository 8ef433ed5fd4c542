// Package config loads the graphcache configuration file and replay scenarios.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger   ports.Logger
	Compiler ports.SelectionCompiler
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, compiler ports.SelectionCompiler) *Loader {
	return &Loader{Logger: logger, Compiler: compiler}
}

// Load walks up from cwd to the filesystem root looking for graphcache.yaml. The first file
// found wins; without one the defaults apply.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, ok := findConfiguration(cwd)
	if !ok {
		l.Logger.Debug("no configuration file found, using defaults", "cwd", cwd)
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file, domain.ErrConfigReadFailed, domain.ErrConfigParseFailed); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	if err := apply(&cfg, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	cfg.Path = path
	l.Logger.Debug("configuration loaded", "path", path)
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *File) error {
	switch file.Log.Level {
	case "":
	case domain.LogLevelDebug, domain.LogLevelInfo, "warn", "error":
		cfg.Log.Level = file.Log.Level
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown log level"), "level", file.Log.Level)
	}
	cfg.Log.JSON = file.Log.JSON
	cfg.Telemetry.Enabled = file.Telemetry.Enabled

	switch n := file.Cache.FlushConcurrency; {
	case n < 0:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "flush_concurrency must not be negative"), "flush_concurrency", n)
	case n > 0:
		cfg.Cache.FlushConcurrency = n
	}
	return nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct. Failures are
// reported under readErr and parseErr.
func readAndUnmarshalYAML[T any](path string, target *T, readErr, parseErr error) error {
	// #nosec G304 -- path is discovered or given on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, readErr.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, parseErr.Error())
	}

	return nil
}
