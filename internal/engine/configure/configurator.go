// Package configure validates collected build inputs and derives the resolved build configuration.
package configure

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Configurator turns domain.Params into a validated domain.Config.
type Configurator struct {
	hosts    ports.HostResolver
	classes  ports.ClassResolverFactory
	logger   ports.Logger
	getenv   func(string) string
	userHome func() (string, error)
}

// Option configures a Configurator.
type Option func(*Configurator)

// WithGetenv replaces the environment lookup used for AOTC_HOME.
func WithGetenv(fn func(string) string) Option {
	return func(c *Configurator) {
		c.getenv = fn
	}
}

// WithUserHome replaces the lookup of the invoking user's home directory.
func WithUserHome(fn func() (string, error)) Option {
	return func(c *Configurator) {
		c.userHome = fn
	}
}

// New creates a new Configurator.
func New(
	hosts ports.HostResolver,
	classes ports.ClassResolverFactory,
	logger ports.Logger,
	opts ...Option,
) *Configurator {
	c := &Configurator{
		hosts:    hosts,
		classes:  classes,
		logger:   logger,
		getenv:   os.Getenv,
		userHome: homedir.Dir,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure validates p and derives every setting of the build, in a fixed order that stops
// at the first failure. The strategy packages the application from the finished configuration.
// No configuration is returned on error, and a temporary directory allocated here is removed again.
func (c *Configurator) Configure(
	ctx context.Context,
	p domain.Params,
	strategy ports.OutputStrategy,
) (cfg *domain.Config, err error) {
	p = p.Clone()

	home, err := c.resolveHome(p.Home)
	if err != nil {
		return nil, err
	}

	classPath := p.ClassPath
	if p.MainJar != "" {
		classPath = append(classPath, p.MainJar)
	}

	if len(classPath) == 0 {
		return nil, domain.ErrEmptyClassPath
	}

	if !p.SkipLinking && p.Target == "" && p.MainClass == "" {
		return nil, domain.ErrNoTarget
	}

	goos := p.OS
	if goos == "" {
		if goos, err = c.hosts.ResolveOS(ctx, p.LLVMHome); err != nil {
			return nil, err
		}
		c.logger.Debug(fmt.Sprintf("resolved target OS %s from the backend", goos))
	}

	arch := p.Arch
	if arch == "" {
		if arch, err = c.hosts.ResolveArch(ctx, p.LLVMHome); err != nil {
			return nil, err
		}
		c.logger.Debug(fmt.Sprintf("resolved target architecture %s from the backend", arch))
	}

	skipInstall := p.SkipInstall || p.SkipLinking

	cfg = &domain.Config{
		Home:            home,
		LLVMHome:        p.LLVMHome,
		GCCBinPath:      p.GCCBinPath,
		ARBinPath:       p.ARBinPath,
		OS:              goos,
		Arch:            arch,
		CPU:             p.CPU,
		Debug:           p.Debug,
		Clean:           p.Clean,
		SkipRuntimeLib:  p.SkipRuntimeLib,
		SkipLinking:     p.SkipLinking,
		SkipInstall:     skipInstall,
		MainJar:         p.MainJar,
		MainClass:       p.MainClass,
		ClassPath:       classPath,
		OSArchDepLibDir: domain.OSArchLibDir(home, goos, arch),
	}

	if err := c.createCacheDirs(cfg, p.CacheDir); err != nil {
		return nil, err
	}

	cfg.Target = p.Target
	if cfg.Target == "" {
		cfg.Target = p.MainClass
	}

	if !p.SkipRuntimeLib {
		cfg.BootClassPath = append([]string{domain.RuntimeArchivePath(home)}, p.BootClassPath...)
	} else {
		cfg.BootClassPath = p.BootClassPath
	}

	cfg.TmpDir = p.TmpDir
	if cfg.TmpDir == "" {
		tmpDir, mkErr := os.MkdirTemp("", domain.TempDirPattern)
		if mkErr != nil {
			return nil, zerr.Wrap(mkErr, domain.ErrTempDirCreateFailed.Error())
		}
		cfg.TmpDir = tmpDir
		c.logger.Debug(fmt.Sprintf("using temporary directory %s", tmpDir))

		defer func() {
			if err != nil {
				_ = os.RemoveAll(tmpDir)
			}
		}()
	}

	if cfg.Classes, err = c.classes.NewClasses(cfg.BootClassPath, cfg.ClassPath); err != nil {
		return nil, err
	}

	if !skipInstall {
		if cfg.InstallDir, err = createInstallDir(p.InstallDir, cfg.Target); err != nil {
			return nil, err
		}
	}

	app, err := strategy.Build(ctx, cfg)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrOutputStrategyFailed.Error())
	}
	cfg.App = app

	return cfg, nil
}

func (c *Configurator) resolveHome(home string) (string, error) {
	if home == "" {
		home = c.getenv(domain.HomeEnvVar)
		if home == "" {
			return "", domain.ErrHomeNotSet
		}
	}

	abs, err := filepath.Abs(home)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrHomeNotFound, err.Error()), "path", home)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrHomeNotFound, abs), "path", abs)
		}
		return "", zerr.With(zerr.Wrap(domain.ErrHomeNotFound, err.Error()), "path", abs)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrHomeNotDirectory, abs), "path", abs)
	}

	return abs, nil
}

// createCacheDirs sets and creates the cache root and its bitcode and object subtrees.
func (c *Configurator) createCacheDirs(cfg *domain.Config, cacheDir string) error {
	if cacheDir == "" {
		userHome, err := c.userHome()
		if err != nil {
			return zerr.Wrap(err, domain.ErrUserHomeNotFound.Error())
		}
		cacheDir = domain.DefaultCacheRoot(userHome)
	} else {
		expanded, err := homedir.Expand(cacheDir)
		if err != nil {
			return zerr.Wrap(err, domain.ErrUserHomeNotFound.Error())
		}
		cacheDir = expanded
	}

	cfg.CacheDir = cacheDir
	cfg.LLVMCacheDir = filepath.Join(cacheDir, domain.LLVMCacheDirName)
	cfg.ObjectCacheDir = filepath.Join(cacheDir, domain.ObjectCacheDirName)

	for _, dir := range []string{cfg.CacheDir, cfg.LLVMCacheDir, cfg.ObjectCacheDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
		}
	}

	return nil
}

func createInstallDir(installDir, target string) (string, error) {
	if installDir == "" {
		abs, err := filepath.Abs(target)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrInstallDirCreateFailed.Error()), "path", target)
		}
		installDir = abs
	}

	if err := os.MkdirAll(installDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInstallDirCreateFailed.Error()), "path", installDir)
	}
	return installDir, nil
}
