// Package output provides the default output strategy, which packages a console executable.
package output

import (
	"context"
	"path/filepath"

	"go.trai.ch/aotc/internal/core/domain"
)

// Console packages the build as a native console executable.
type Console struct{}

// NewConsole creates a new Console strategy.
func NewConsole() *Console {
	return &Console{}
}

// Setup leaves the builder untouched; a console executable needs no extra inputs.
func (c *Console) Setup(_ *domain.Builder) error {
	return nil
}

// Build returns the console application described by cfg.
// Without a target nothing is linked, so the application has no executable.
func (c *Console) Build(_ context.Context, cfg *domain.Config) (domain.App, error) {
	if cfg.Target == "" {
		return &ConsoleApp{}, nil
	}

	dir := cfg.InstallDir
	if cfg.SkipInstall || dir == "" {
		dir = cfg.TmpDir
	}

	return &ConsoleApp{
		name:       cfg.Target,
		executable: filepath.Join(dir, filepath.Base(cfg.Target)),
	}, nil
}

// ConsoleApp is a native executable run from a terminal.
type ConsoleApp struct {
	name       string
	executable string
}

// Name returns the application name.
func (a *ConsoleApp) Name() string {
	return a.name
}

// Executable returns the location the native executable is written to.
func (a *ConsoleApp) Executable() string {
	return a.executable
}
