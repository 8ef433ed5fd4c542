package config

import "gopkg.in/yaml.v3"

// File represents the structure of the graphcache.yaml configuration file.
type File struct {
	Log       LogDTO       `yaml:"log"`
	Telemetry TelemetryDTO `yaml:"telemetry"`
	Cache     CacheDTO     `yaml:"cache"`
}

// LogDTO is the log section of the configuration file.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// TelemetryDTO is the telemetry section of the configuration file.
type TelemetryDTO struct {
	Enabled bool `yaml:"enabled"`
}

// CacheDTO is the cache section of the configuration file.
type CacheDTO struct {
	FlushConcurrency int `yaml:"flush_concurrency"`
}

// ScenarioFile represents the structure of a replay scenario file.
type ScenarioFile struct {
	Selections map[string]string `yaml:"selections"`
	Steps      []yaml.Node       `yaml:"steps"`
}

// StepDTO holds the arguments of one step. Which fields apply depends on the step kind.
type StepDTO struct {
	Watch     string    `yaml:"watch"`
	Selection string    `yaml:"selection"`
	Root      string    `yaml:"root"`
	Data      yaml.Node `yaml:"data"`
	JSON      string    `yaml:"json"`
	Key       string    `yaml:"key"`
	Patch     yaml.Node `yaml:"patch"`
}
