package ports

import "go.trai.ch/graphcache/internal/core/domain"

// ConfigLoader defines the interface for loading configuration and scenario files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for graphcache.yaml and returns the resolved configuration.
	// Defaults are returned when no file exists.
	Load(cwd string) (domain.Config, error)

	// LoadScenario reads and compiles the scenario file at path.
	LoadScenario(path string) (*domain.Scenario, error)
}
