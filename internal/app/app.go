// Package app implements the application layer for aotc.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports"
	"go.trai.ch/aotc/internal/engine/configure"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	loader       ports.ConfigLoader
	configurator *configure.Configurator
	archiver     ports.Archiver
	logger       ports.Logger
	strategy     ports.OutputStrategy
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	configurator *configure.Configurator,
	archiver ports.Archiver,
	logger ports.Logger,
	strategy ports.OutputStrategy,
) *App {
	return &App{
		loader:       loader,
		configurator: configurator,
		archiver:     archiver,
		logger:       logger,
		strategy:     strategy,
		getwd:        os.Getwd,
	}
}

// WithStrategy replaces the output strategy used to package the application.
func (a *App) WithStrategy(strategy ports.OutputStrategy) *App {
	a.strategy = strategy
	return a
}

// WithWorkDir replaces the lookup of the directory config discovery starts from.
func (a *App) WithWorkDir(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// ResolveOptions configures how build inputs are collected.
type ResolveOptions struct {
	// ConfigPath names an explicit config file. When empty, the nearest aotc.yaml is used.
	ConfigPath string
	// NoConfig disables config file discovery.
	NoConfig bool
	// Overrides is applied after the config file, so command-line flags win.
	Overrides func(b *domain.Builder)
}

// Resolve collects build inputs from the config file and the overrides, lets the output
// strategy adjust them and returns the validated configuration.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (*domain.Config, error) {
	b := domain.NewBuilder()

	path, err := a.configPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := a.loader.Apply(path, b); err != nil {
			return nil, err
		}
	}

	if opts.Overrides != nil {
		opts.Overrides(b)
	}

	if err := a.strategy.Setup(b); err != nil {
		return nil, zerr.Wrap(err, domain.ErrOutputStrategyFailed.Error())
	}

	return a.configurator.Configure(ctx, b.Params(), a.strategy)
}

func (a *App) configPath(opts ResolveOptions) (string, error) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, nil
	}
	if opts.NoConfig {
		return "", nil
	}

	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return a.loader.Discover(cwd)
}

// ArchiveResult pairs a class path entry with the archive that holds its classes.
type ArchiveResult struct {
	Entry   domain.ClassPathEntry
	Archive string
}

// Archive materializes every directory entry of both class paths as an archive in the
// bitcode cache, at most jobs at a time. Results keep class path order, boot entries first.
// A clean build empties the caches first.
func (a *App) Archive(ctx context.Context, cfg *domain.Config, jobs int) ([]ArchiveResult, error) {
	if cfg.Clean {
		if _, err := a.Clean(cfg, CleanOptions{Bitcode: true, Objects: true}); err != nil {
			return nil, err
		}
	}

	entries := Entries(cfg)
	results := make([]ArchiveResult, len(entries))

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, entry := range entries {
		g.Go(func() error {
			path, err := a.archiver.ArchivePath(ctx, cfg, entry)
			if err != nil {
				return zerr.With(err, "entry", entry.File())
			}
			results[i] = ArchiveResult{Entry: entry, Archive: path}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("%d class path entries ready", len(results)))
	return results, nil
}

// WriteArchive stores the files below dir in the archive at output.
func (a *App) WriteArchive(dir, output string, skipClassFiles bool) error {
	if err := a.archiver.WriteArchive(dir, output, skipClassFiles); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote %s", output))
	return nil
}

// Entries returns the entries of both class paths, boot entries first.
func Entries(cfg *domain.Config) []domain.ClassPathEntry {
	if cfg.Classes == nil {
		return nil
	}
	boot := cfg.Classes.BootClassPath()
	app := cfg.Classes.ClassPath()

	entries := make([]domain.ClassPathEntry, 0, len(boot)+len(app))
	entries = append(entries, boot...)
	return append(entries, app...)
}
