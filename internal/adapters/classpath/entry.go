// Package classpath resolves class path roots into entries and looks up classes and resources in them.
package classpath

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/aotc/internal/adapters/fs"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/zerr"
)

var _ domain.ClassPathEntry = (*Entry)(nil)

// Entry is a class path root backed by the local file system.
type Entry struct {
	file    string
	index   int
	archive bool
	walker  *fs.Walker

	indexOnce sync.Once
	names     map[string]struct{}
	indexErr  error
}

// NewEntry canonicalizes path and stats it once to decide whether it is an archive.
func NewEntry(path string, index int, walker *fs.Walker) (*Entry, error) {
	file, err := Canonicalize(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrClassPathResolveFailed.Error()), "path", path)
	}

	info, err := os.Stat(file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrClassPathResolveFailed.Error()), "path", file)
	}

	return &Entry{
		file:    file,
		index:   index,
		archive: info.Mode().IsRegular(),
		walker:  walker,
	}, nil
}

// Canonicalize returns the absolute, symlink-free form of path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// File returns the canonical location of the root.
func (e *Entry) File() string {
	return e.file
}

// Index returns the ordinal of the entry within its class path.
func (e *Entry) Index() int {
	return e.index
}

// IsArchive reports whether the root is a single archive file.
func (e *Entry) IsArchive() bool {
	return e.archive
}

// HasChangedSince reports whether the archive, or any file or directory below a
// directory root, has a modification time after t.
func (e *Entry) HasChangedSince(t time.Time) (bool, error) {
	if !e.archive {
		changed, err := e.walker.ChangedSince(e.file, t)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error()), "path", e.file)
		}
		return changed, nil
	}

	info, err := os.Stat(e.file)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error()), "path", e.file)
	}
	return info.ModTime().After(t), nil
}

// Contains reports whether the root provides the slash-separated resource name.
func (e *Entry) Contains(name string) (bool, error) {
	name = strings.TrimPrefix(name, "/")
	if !e.archive {
		info, err := os.Stat(filepath.Join(e.file, filepath.FromSlash(name)))
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, err
		}
		return info.Mode().IsRegular(), nil
	}

	e.indexOnce.Do(e.loadIndex)
	if e.indexErr != nil {
		return false, e.indexErr
	}
	_, ok := e.names[name]
	return ok, nil
}

func (e *Entry) loadIndex() {
	r, err := zip.OpenReader(e.file)
	if err != nil {
		e.indexErr = zerr.With(zerr.Wrap(err, "failed to read archive index"), "path", e.file)
		return
	}
	defer func() {
		_ = r.Close()
	}()

	e.names = make(map[string]struct{}, len(r.File))
	for _, f := range r.File {
		e.names[f.Name] = struct{}{}
	}
}
