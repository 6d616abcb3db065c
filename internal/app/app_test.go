package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aotc/internal/adapters/classpath"
	"go.trai.ch/aotc/internal/adapters/fs"
	"go.trai.ch/aotc/internal/app"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports/mocks"
	"go.trai.ch/aotc/internal/engine/configure"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	archiver *mocks.MockArchiver
	strategy *mocks.MockOutputStrategy
	log      *mocks.MockLogger
	app      *app.App
	home     string
	cacheDir string
	work     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		archiver: mocks.NewMockArchiver(ctrl),
		strategy: mocks.NewMockOutputStrategy(ctrl),
		log:      mocks.NewMockLogger(ctrl),
		home:     t.TempDir(),
		cacheDir: filepath.Join(t.TempDir(), "cache"),
		work:     t.TempDir(),
	}
	f.log.EXPECT().Debug(gomock.Any()).AnyTimes()
	t.Setenv("TMPDIR", t.TempDir())

	require.NoError(t, os.MkdirAll(filepath.Join(f.work, "classes"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(f.work, "resources"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(f.work, "lib.jar"), nil, 0o600))

	configurator := configure.New(
		mocks.NewMockHostResolver(ctrl),
		classpath.NewFactory(fs.NewWalker()),
		f.log,
		configure.WithGetenv(func(string) string { return "" }),
	)
	f.app = app.New(f.loader, configurator, f.archiver, f.log, f.strategy).
		WithWorkDir(func() (string, error) { return f.work, nil })
	return f
}

// overrides sets inputs that pass validation without probing the backend.
func (f *fixture) overrides(b *domain.Builder) {
	b.Home(f.home).
		CacheDir(f.cacheDir).
		OS(domain.OSLinux).
		Arch(domain.ArchX8664).
		SkipRuntimeLib(true).
		SkipInstall(true).
		Target("hello").
		AddClassPathEntry(filepath.Join(f.work, "classes")).
		AddClassPathEntry(filepath.Join(f.work, "lib.jar")).
		AddClassPathEntry(filepath.Join(f.work, "resources"))
}

func (f *fixture) expectStrategy() {
	f.strategy.EXPECT().Setup(gomock.Any()).Return(nil)
	f.strategy.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, nil)
}

func (f *fixture) resolve(t *testing.T) *domain.Config {
	t.Helper()
	f.expectStrategy()
	cfg, err := f.app.Resolve(t.Context(), app.ResolveOptions{NoConfig: true, Overrides: f.overrides})
	require.NoError(t, err)
	return cfg
}

func TestApp_Resolve_DiscoveredConfig(t *testing.T) {
	f := newFixture(t)
	configPath := filepath.Join(f.work, domain.ConfigFileName)

	gomock.InOrder(
		f.loader.EXPECT().Discover(f.work).Return(configPath, nil),
		f.loader.EXPECT().Apply(configPath, gomock.Any()).DoAndReturn(func(_ string, b *domain.Builder) error {
			b.Target("from-config").MainClass("com.example.Main")
			return nil
		}),
		f.strategy.EXPECT().Setup(gomock.Any()).Return(nil),
		f.strategy.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, nil),
	)

	cfg, err := f.app.Resolve(t.Context(), app.ResolveOptions{
		Overrides: func(b *domain.Builder) {
			f.overrides(b)
			b.Target("from-flag")
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Target, "flags win over the config file")
	assert.Equal(t, "com.example.Main", cfg.MainClass)
}

func TestApp_Resolve_NoConfigFound(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Discover(f.work).Return("", nil)
	f.expectStrategy()

	_, err := f.app.Resolve(t.Context(), app.ResolveOptions{Overrides: f.overrides})
	require.NoError(t, err)
}

func TestApp_Resolve_ExplicitConfig(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Apply("/etc/aotc.yaml", gomock.Any()).Return(nil)
	f.expectStrategy()

	_, err := f.app.Resolve(t.Context(), app.ResolveOptions{ConfigPath: "/etc/aotc.yaml", Overrides: f.overrides})
	require.NoError(t, err)
}

func TestApp_Resolve_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Apply("/etc/aotc.yaml", gomock.Any()).Return(domain.ErrConfigParseFailed)

	_, err := f.app.Resolve(t.Context(), app.ResolveOptions{ConfigPath: "/etc/aotc.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Resolve_SetupError(t *testing.T) {
	f := newFixture(t)
	f.strategy.EXPECT().Setup(gomock.Any()).Return(errors.New("unsupported packaging"))

	_, err := f.app.Resolve(t.Context(), app.ResolveOptions{NoConfig: true, Overrides: f.overrides})
	require.Error(t, err)
	assert.ErrorContains(t, err, "output strategy failed")
}

func TestApp_Resolve_SetupAdjustsBuilder(t *testing.T) {
	f := newFixture(t)
	f.strategy.EXPECT().Setup(gomock.Any()).DoAndReturn(func(b *domain.Builder) error {
		b.Debug(false)
		return nil
	})
	f.strategy.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, nil)

	cfg, err := f.app.Resolve(t.Context(), app.ResolveOptions{NoConfig: true, Overrides: f.overrides})
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestApp_Archive(t *testing.T) {
	f := newFixture(t)
	cfg := f.resolve(t)

	f.archiver.EXPECT().ArchivePath(gomock.Any(), cfg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Config, e domain.ClassPathEntry) (string, error) {
			return e.File() + ".archived", nil
		}).Times(3)
	f.log.EXPECT().Info("3 class path entries ready")

	results, err := f.app.Archive(t.Context(), cfg, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, entry := range app.Entries(cfg) {
		assert.Equal(t, entry, results[i].Entry)
		assert.Equal(t, entry.File()+".archived", results[i].Archive)
	}
}

func TestApp_Archive_Error(t *testing.T) {
	f := newFixture(t)
	cfg := f.resolve(t)

	f.archiver.EXPECT().ArchivePath(gomock.Any(), cfg, gomock.Any()).
		Return("", errors.New("disk full")).MinTimes(1)

	results, err := f.app.Archive(t.Context(), cfg, 1)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorContains(t, err, "disk full")
}

func TestApp_Archive_CleanBuild(t *testing.T) {
	f := newFixture(t)
	cfg := f.resolve(t)
	cfg.Clean = true

	stale := filepath.Join(cfg.LLVMCacheDir, "stale.jar")
	require.NoError(t, os.WriteFile(stale, nil, 0o600))

	f.archiver.EXPECT().ArchivePath(gomock.Any(), cfg, gomock.Any()).Return("x", nil).Times(3)
	f.log.EXPECT().Info(gomock.Any())

	_, err := f.app.Archive(t.Context(), cfg, 0)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestApp_WriteArchive(t *testing.T) {
	f := newFixture(t)
	f.archiver.EXPECT().WriteArchive("/src", "/out.jar", true).Return(nil)
	f.log.EXPECT().Info("wrote /out.jar")

	require.NoError(t, f.app.WriteArchive("/src", "/out.jar", true))
}

func TestApp_Clean(t *testing.T) {
	tests := []struct {
		name        string
		opts        app.CleanOptions
		wantBitcode bool
		wantObjects bool
	}{
		{name: "bitcode only", opts: app.CleanOptions{Bitcode: true}, wantBitcode: false, wantObjects: true},
		{name: "objects only", opts: app.CleanOptions{Objects: true}, wantBitcode: true, wantObjects: false},
		{name: "everything", opts: app.CleanOptions{Bitcode: true, Objects: true}, wantBitcode: false, wantObjects: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			cfg := f.resolve(t)

			bitcode := filepath.Join(cfg.LLVMCacheDir, "classes0.jar")
			object := filepath.Join(cfg.ObjectCacheDir, "debug", "libclasses0.jar.a")
			require.NoError(t, os.WriteFile(bitcode, nil, 0o600))
			require.NoError(t, os.MkdirAll(filepath.Dir(object), 0o750))
			require.NoError(t, os.WriteFile(object, nil, 0o600))

			removed, err := f.app.Clean(cfg, tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBitcode, fileExists(bitcode))
			assert.Equal(t, tt.wantObjects, fileExists(object))
			for _, dir := range removed {
				assert.DirExists(t, dir, "cache roots are recreated")
			}
		})
	}
}

func TestPlan(t *testing.T) {
	f := newFixture(t)
	cfg := f.resolve(t)

	plans := app.Plan(cfg)
	require.Len(t, plans, 3)

	jar := plans[1]
	assert.True(t, jar.Entry.IsArchive())
	assert.Equal(t, jar.Entry.File(), jar.Archive)
	assert.Equal(t, "lib.jar.classes", filepath.Base(jar.BitcodeDir))
	assert.Equal(t, "liblib.jar.a", filepath.Base(jar.StaticLibrary))

	dir := plans[0]
	assert.False(t, dir.Entry.IsArchive())
	assert.Equal(t, "classes0.jar", filepath.Base(dir.Archive))
	assert.Equal(t, filepath.Dir(dir.BitcodeDir), filepath.Dir(dir.Archive))
	assert.Equal(t, "libclasses0.jar.a", filepath.Base(dir.BitcodeLibrary))
	assert.Contains(t, dir.ObjectDir, filepath.Join(cfg.ObjectCacheDir, "debug", "linux", "x86_64", "default"))

	assert.Equal(t, "classes2.jar", filepath.Base(plans[2].Archive))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
