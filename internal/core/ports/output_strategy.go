package ports

import (
	"context"

	"go.trai.ch/aotc/internal/core/domain"
)

// OutputStrategy defines how the final application is packaged.
//
//go:generate mockgen -source=output_strategy.go -destination=mocks/mock_output_strategy.go -package=mocks
type OutputStrategy interface {
	// Setup is called before validation and may adjust the builder.
	Setup(b *domain.Builder) error

	// Build is called with the validated configuration and returns the packaged application.
	Build(ctx context.Context, cfg *domain.Config) (domain.App, error)
}
