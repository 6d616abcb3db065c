package ports

import "go.trai.ch/aotc/internal/core/domain"

// ConfigLoader defines the interface for loading build inputs from a configuration file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Discover walks up from cwd and returns the path of the nearest configuration file.
	// It returns an empty path when there is none.
	Discover(cwd string) (string, error)

	// Apply reads the configuration file at path and applies its settings to the builder.
	Apply(path string, b *domain.Builder) error
}
