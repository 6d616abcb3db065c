// Package config provides the configuration file loader for aotc.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/aotc/internal/adapters/fs"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	resolver *fs.Resolver
	logger   ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(resolver *fs.Resolver, logger ports.Logger) *Loader {
	return &Loader{resolver: resolver, logger: logger}
}

// Discover walks up from cwd and returns the nearest aotc.yaml, or "" when there is none.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

// Load reads and decodes the configuration file at path.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	return &file, nil
}

// Apply reads the configuration file at path and applies its settings to the builder.
// Relative paths are resolved against the directory holding the file and "~" is expanded.
func (l *Loader) Apply(path string, b *domain.Builder) error {
	file, err := Load(path)
	if err != nil {
		return err
	}

	base := filepath.Dir(path)
	if err := l.apply(file, base, b); err != nil {
		return zerr.With(err, "config", path)
	}

	l.logger.Debug(fmt.Sprintf("applied %s", path))
	return nil
}

func (l *Loader) apply(file *File, base string, b *domain.Builder) error {
	paths := []struct {
		value string
		set   func(string) *domain.Builder
	}{
		{file.Home, b.Home},
		{file.LLVMHome, b.LLVMHome},
		{file.GCCBinPath, b.GCCBinPath},
		{file.ARBinPath, b.ARBinPath},
		{file.CacheDir, b.CacheDir},
		{file.MainJar, b.MainJar},
		{file.InstallDir, b.InstallDir},
		{file.TmpDir, b.TmpDir},
	}
	for _, p := range paths {
		if p.value == "" {
			continue
		}
		resolved, err := resolvePath(base, p.value)
		if err != nil {
			return err
		}
		p.set(resolved)
	}

	if file.OS != "" {
		goos, err := domain.ParseOSName(file.OS)
		if err != nil {
			return err
		}
		b.OS(goos)
	}
	if file.Arch != "" {
		arch, err := domain.ParseArchName(file.Arch)
		if err != nil {
			return err
		}
		b.Arch(arch)
	}
	if file.CPU != "" {
		b.CPU(file.CPU)
	}
	if file.MainClass != "" {
		b.MainClass(file.MainClass)
	}
	if file.Target != "" {
		b.Target(file.Target)
	}

	flags := []struct {
		value *bool
		set   func(bool) *domain.Builder
	}{
		{file.Debug, b.Debug},
		{file.Clean, b.Clean},
		{file.SkipRuntimeLib, b.SkipRuntimeLib},
		{file.SkipLinking, b.SkipLinking},
		{file.SkipInstall, b.SkipInstall},
	}
	for _, f := range flags {
		if f.value != nil {
			f.set(*f.value)
		}
	}

	boot, err := l.expandClassPath(base, file.BootClassPath)
	if err != nil {
		return err
	}
	for _, entry := range boot {
		b.AddBootClassPathEntry(entry)
	}

	app, err := l.expandClassPath(base, file.ClassPath)
	if err != nil {
		return err
	}
	for _, entry := range app {
		b.AddClassPathEntry(entry)
	}

	return nil
}

func (l *Loader) expandClassPath(base string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	expanded := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		p, err := homedir.Expand(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "pattern", pattern)
		}
		expanded = append(expanded, p)
	}

	return l.resolver.Expand(expanded, base)
}

func resolvePath(base, path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(base, expanded), nil
}
