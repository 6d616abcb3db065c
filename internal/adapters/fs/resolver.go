package fs

import (
	"path/filepath"

	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver expands class path patterns using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Expand resolves patterns relative to root, keeping the order of the patterns.
// Literal paths are passed through even when they do not exist; a glob must match at least once.
// Matches of a single glob are sorted and duplicates are dropped.
func (r *Resolver) Expand(patterns []string, root string) ([]string, error) {
	seen := make(map[string]bool)
	result := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		if !hasMeta(path) {
			if !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
			continue
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrClassPathPattern, err.Error()), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrClassPathNoMatch, pattern), "pattern", pattern)
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	return result, nil
}

func hasMeta(path string) bool {
	for i := range len(path) {
		switch path[i] {
		case '*', '?', '[':
			return true
		case '\\':
			if filepath.Separator != '\\' {
				return true
			}
		}
	}
	return false
}
