package ports

import "go.trai.ch/aotc/internal/core/domain"

// ClassResolverFactory defines the interface for building the class and resource resolver of a build.
//
//go:generate mockgen -source=class_resolver.go -destination=mocks/mock_class_resolver.go -package=mocks
type ClassResolverFactory interface {
	// NewClasses resolves the given boot and application class path roots.
	NewClasses(bootClassPath, classPath []string) (domain.Classes, error)
}
