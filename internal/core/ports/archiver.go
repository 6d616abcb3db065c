package ports

import (
	"context"

	"go.trai.ch/aotc/internal/core/domain"
)

// Archiver defines the interface for turning class path entries into archive files.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// ArchivePath returns an archive for the entry, creating or refreshing it in the cache
	// when the entry is a directory.
	ArchivePath(ctx context.Context, cfg *domain.Config, entry domain.ClassPathEntry) (string, error)

	// WriteArchive writes the contents of dir to an archive at output.
	WriteArchive(dir, output string, skipClassFiles bool) error
}
