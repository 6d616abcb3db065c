// Package fs provides file system adapters for walking class path trees.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"
)

// File is a regular file found below a walk root.
type File struct {
	// Path is the file's location, prefixed with the walk root.
	Path string
	// Name is the slash-separated path relative to the walk root.
	Name string
	// ModTime is the file's modification time.
	ModTime time.Time
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all regular files below root in lexical order.
// Symbolic links to regular files are followed and carry the target's modification time.
// The walk stops at the first error, which is yielded with a zero File.
func (w *Walker) WalkFiles(root string) iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			info, ok, err := regularFile(path, d)
			if err != nil || !ok {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			f := File{Path: path, Name: filepath.ToSlash(rel), ModTime: info.ModTime()}
			if !yield(f, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(File{}, err)
		}
	}
}

// ChangedSince reports whether root or anything below it was modified after t.
// Directories count, so removing a file is noticed through its parent.
// For symbolic links to regular files the target's modification time counts too.
func (w *Walker) ChangedSince(root string, t time.Time) (bool, error) {
	changed := false
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(t) {
			changed = true
			return filepath.SkipAll
		}
		if d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		target, ok, err := regularFile(path, d)
		if err != nil {
			return err
		}
		if ok && target.ModTime().After(t) {
			changed = true
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// regularFile returns the info of d when it is a regular file or a symbolic link to one.
// Dangling links and links to anything else are reported as not ok.
func regularFile(path string, d fs.DirEntry) (fs.FileInfo, bool, error) {
	if d.Type().IsRegular() {
		info, err := d.Info()
		return info, err == nil, err
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return nil, false, nil
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return info, info.Mode().IsRegular(), nil
}
