package ports

import (
	"context"

	"go.trai.ch/aotc/internal/core/domain"
)

// HostResolver defines the interface for discovering the default target of the native backend.
//
//go:generate mockgen -source=host_resolver.go -destination=mocks/mock_host_resolver.go -package=mocks
type HostResolver interface {
	// ResolveOS returns the operating system the backend under llvmHome targets by default.
	// An empty llvmHome means the backend is looked up on PATH.
	ResolveOS(ctx context.Context, llvmHome string) (domain.OS, error)

	// ResolveArch returns the architecture the backend under llvmHome targets by default.
	ResolveArch(ctx context.Context, llvmHome string) (domain.Arch, error)
}
