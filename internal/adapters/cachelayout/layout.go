// Package cachelayout maps class path entries to their locations in the bitcode and object caches.
package cachelayout

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/aotc/internal/core/domain"
)

const (
	synthesizedPrefix    = "classes"
	synthesizedExtension = ".jar"
	libraryPrefix        = "lib"
	libraryExtension     = ".a"
)

// Layout computes cache paths for one build variant. It does not touch the file system.
type Layout struct {
	llvmCacheDir   string
	objectCacheDir string
	variantDir     string
}

// New creates a Layout for the given configuration.
func New(cfg *domain.Config) *Layout {
	return &Layout{
		llvmCacheDir:   cfg.LLVMCacheDir,
		objectCacheDir: cfg.ObjectCacheDir,
		variantDir: filepath.Join(
			cfg.ObjectCacheDir,
			cfg.Variant(),
			string(cfg.OS),
			string(cfg.Arch),
			cfg.CPUOrDefault(),
		),
	}
}

// ArchiveName returns the file name of archive entries, and classes<index>.jar for directories.
// Synthesized names depend on the entry's position, so reordering a class path changes them.
func ArchiveName(e domain.ClassPathEntry) string {
	if e.IsArchive() {
		return filepath.Base(e.File())
	}
	return synthesizedPrefix + strconv.Itoa(e.Index()) + synthesizedExtension
}

// SourceRoot returns the directory mirrored into the caches: the entry itself for
// directories and its parent for archives.
func SourceRoot(e domain.ClassPathEntry) string {
	if e.IsArchive() {
		return filepath.Dir(e.File())
	}
	return e.File()
}

// Reparent rebuilds the segments of src below base, root to leaf.
// A volume name becomes the first segment with its colon removed.
func Reparent(base, src string) string {
	src = filepath.Clean(src)
	vol := filepath.VolumeName(src)

	segments := []string{base}
	if v := strings.ReplaceAll(vol, ":", ""); v != "" {
		segments = append(segments, v)
	}
	for _, s := range strings.Split(filepath.ToSlash(src[len(vol):]), "/") {
		if s == "" || s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return filepath.Join(segments...)
}

// BitcodeDir returns <llvmCache>/<mirrored source root>/<archive name>.classes.
func (l *Layout) BitcodeDir(e domain.ClassPathEntry) string {
	return filepath.Join(Reparent(l.llvmCacheDir, SourceRoot(e)), ArchiveName(e)+domain.ClassesDirSuffix)
}

// ObjectDir returns <objectCache>/<variant>/<os>/<arch>/<cpu>/<mirrored source root>/<archive name>.classes.
func (l *Layout) ObjectDir(e domain.ClassPathEntry) string {
	return filepath.Join(Reparent(l.variantDir, SourceRoot(e)), ArchiveName(e)+domain.ClassesDirSuffix)
}

// ArchiveFile returns the location a directory entry is materialized to.
func (l *Layout) ArchiveFile(e domain.ClassPathEntry) string {
	return filepath.Join(filepath.Dir(l.BitcodeDir(e)), ArchiveName(e))
}

// BitcodeLibrary returns the bitcode library of an entry, next to its bitcode directory.
func (l *Layout) BitcodeLibrary(e domain.ClassPathEntry) string {
	return filepath.Join(filepath.Dir(l.BitcodeDir(e)), libraryPrefix+ArchiveName(e)+libraryExtension)
}

// StaticLibrary returns the native static library of an entry, next to its object directory.
func (l *Layout) StaticLibrary(e domain.ClassPathEntry) string {
	return filepath.Join(filepath.Dir(l.ObjectDir(e)), libraryPrefix+ArchiveName(e)+libraryExtension)
}

// LLVMCacheDir returns the bitcode cache root.
func (l *Layout) LLVMCacheDir() string {
	return l.llvmCacheDir
}

// ObjectCacheDir returns the object cache root.
func (l *Layout) ObjectCacheDir() string {
	return l.objectCacheDir
}

// VariantDir returns the object cache partition of the current build variant.
func (l *Layout) VariantDir() string {
	return l.variantDir
}
