// Package archive materializes directory class path entries as archives in the bitcode cache.
package archive

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gofrs/flock"
	"github.com/klauspost/compress/zip"
	"go.trai.ch/aotc/internal/adapters/cachelayout"
	"go.trai.ch/aotc/internal/adapters/fs"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	classFileSuffix = ".class"
	lockRetryDelay  = 50 * time.Millisecond
)

var _ ports.Archiver = (*Materializer)(nil)

// Materializer implements ports.Archiver with zip archives.
type Materializer struct {
	walker *fs.Walker
	logger ports.Logger
}

// NewMaterializer creates a new Materializer.
func NewMaterializer(walker *fs.Walker, logger ports.Logger) *Materializer {
	return &Materializer{
		walker: walker,
		logger: logger,
	}
}

// WriteOption configures Write.
type WriteOption func(*writeOptions)

type writeOptions struct {
	skipClassFiles bool
}

// SkipClassFiles writes class files as empty entries.
func SkipClassFiles() WriteOption {
	return func(o *writeOptions) {
		o.skipClassFiles = true
	}
}

// ArchivePath returns archive entries unchanged. Directory entries are written to the
// bitcode cache and rewritten from scratch when the archive is missing or the directory
// changed after the archive was last written.
func (m *Materializer) ArchivePath(ctx context.Context, cfg *domain.Config, entry domain.ClassPathEntry) (string, error) {
	if entry.IsArchive() {
		return entry.File(), nil
	}

	archive := cachelayout.New(cfg).ArchiveFile(entry)

	stale, err := isStale(archive, entry)
	if err != nil {
		return "", err
	}
	if !stale {
		return archive, nil
	}

	lock, err := acquireLock(ctx, cfg.CacheDir, archive)
	if err != nil {
		return "", err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			m.logger.Warn(fmt.Sprintf("failed to release archive lock %s: %v", lock.Path(), unlockErr))
		}
	}()

	// Another process may have written the archive while we waited.
	stale, err = isStale(archive, entry)
	if err != nil {
		return "", err
	}
	if !stale {
		return archive, nil
	}

	m.logger.Debug(fmt.Sprintf("Creating archive file '%s' from files in directory '%s'", archive, entry.File()))
	if err := m.Write(entry.File(), archive); err != nil {
		return "", err
	}
	return archive, nil
}

// WriteArchive implements ports.Archiver.
func (m *Materializer) WriteArchive(dir, output string, skipClassFiles bool) error {
	var opts []WriteOption
	if skipClassFiles {
		opts = append(opts, SkipClassFiles())
	}
	return m.Write(dir, output, opts...)
}

// Write stores every file below dir in a zip archive at output, named by its slash-separated
// path relative to dir and stamped with the file's modification time.
// The archive is written to a temporary file first and renamed into place.
func (m *Materializer) Write(dir, output string, opts ...WriteOption) error {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := m.write(dir, output, o); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "dir", dir), "output", output)
	}
	return nil
}

func (m *Materializer) write(dir, output string, o writeOptions) error {
	parent := filepath.Dir(output)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(parent, filepath.Base(output)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmpFile)
	zw := zip.NewWriter(buf)
	for f, err := range m.walker.WalkFiles(dir) {
		if err != nil {
			_ = tmpFile.Close()
			return err
		}
		if err := addFile(zw, f, o.skipClassFiles); err != nil {
			_ = tmpFile.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, output)
}

func addFile(zw *zip.Writer, f fs.File, skipClassFiles bool) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     f.Name,
		Method:   zip.Deflate,
		Modified: f.ModTime,
	})
	if err != nil {
		return err
	}

	if skipClassFiles && strings.HasSuffix(strings.ToLower(f.Name), classFileSuffix) {
		return nil
	}

	in, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	_, err = io.Copy(w, in)
	return err
}

func isStale(archive string, entry domain.ClassPathEntry) (bool, error) {
	info, err := os.Stat(archive)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "output", archive)
	}
	return entry.HasChangedSince(info.ModTime())
}

// acquireLock takes the advisory lock guarding archive, waiting until ctx is done.
func acquireLock(ctx context.Context, cacheDir, archive string) (*flock.Flock, error) {
	dir := filepath.Join(cacheDir, domain.LocksDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveLockFailed.Error()), "path", dir)
	}

	lock := flock.New(filepath.Join(dir, LockName(archive)))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveLockFailed.Error()), "path", lock.Path())
	}
	if !locked {
		return nil, zerr.With(zerr.Wrap(domain.ErrArchiveLockFailed, lock.Path()), "path", lock.Path())
	}
	return lock, nil
}

// LockName returns the lock file name guarding archive.
func LockName(archive string) string {
	return fmt.Sprintf("%016x.lock", xxhash.Sum64String(archive))
}
