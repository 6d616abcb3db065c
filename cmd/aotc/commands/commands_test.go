package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aotc/cmd/aotc/commands"
	"go.trai.ch/aotc/internal/app"
	"go.trai.ch/aotc/internal/core/domain"
	_ "go.trai.ch/aotc/internal/wiring"
	"gopkg.in/yaml.v3"
)

type workspace struct {
	home     string
	cacheDir string
	classes  string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	root := t.TempDir()
	w := &workspace{
		home:     filepath.Join(root, "sdk"),
		cacheDir: filepath.Join(root, "cache"),
		classes:  filepath.Join(root, "classes"),
	}

	writeArchive(t, domain.RuntimeArchivePath(w.home))
	require.NoError(t, os.MkdirAll(filepath.Join(w.classes, "com", "example"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(w.classes, "com", "example", "Main.class"), []byte{0xCA, 0xFE}, 0o600))
	return w
}

// writeArchive creates an empty zip file.
func writeArchive(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	// An empty zip consists of the end of central directory record only.
	eocd := append([]byte("PK\x05\x06"), make([]byte, 18)...)
	require.NoError(t, os.WriteFile(path, eocd, 0o600))
}

func (w *workspace) args(extra ...string) []string {
	base := []string{
		"--no-config",
		"--log-format", "plain",
		"--home", w.home,
		"--cache-dir", w.cacheDir,
		"--os", "linux",
		"--arch", "arm64",
		"--classpath", w.classes,
		"--output", "hello",
		"--skip-install",
	}
	return append(base, extra...)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	components, _, err := graft.ExecuteFor[*app.Components](t.Context(), graft.DisableCache())
	require.NoError(t, err)

	cli := commands.New(components.App, components.Logger)
	out := &bytes.Buffer{}
	cli.SetOut(out)
	cli.SetArgs(args)

	err = cli.Execute(t.Context())
	return out.String(), err
}

type printedEntry struct {
	File      string `yaml:"file"`
	IsArchive bool   `yaml:"isArchive"`
	Archive   string `yaml:"archive"`
	ObjectDir string `yaml:"objectDir"`
}

type printedConfig struct {
	OS            string         `yaml:"os"`
	Arch          string         `yaml:"arch"`
	CPU           string         `yaml:"cpu"`
	Variant       string         `yaml:"variant"`
	Target        string         `yaml:"target"`
	SkipInstall   bool           `yaml:"skipInstall"`
	Executable    string         `yaml:"executable"`
	LibDir        string         `yaml:"osArchDepLibDir"`
	BootClassPath []printedEntry `yaml:"bootClasspath"`
	ClassPath     []printedEntry `yaml:"classpath"`
}

func TestResolve(t *testing.T) {
	w := newWorkspace(t)

	out, err := execute(t, append([]string{"resolve"}, w.args()...)...)
	require.NoError(t, err)

	var cfg printedConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))

	assert.Equal(t, "linux", cfg.OS)
	assert.Equal(t, "arm64", cfg.Arch)
	assert.Equal(t, "default", cfg.CPU)
	assert.Equal(t, "debug", cfg.Variant)
	assert.Equal(t, "hello", cfg.Target)
	assert.True(t, cfg.SkipInstall)
	assert.Equal(t, filepath.Join(w.home, "lib", "linux", "arm64"), cfg.LibDir)
	assert.Equal(t, "hello", filepath.Base(cfg.Executable))

	require.Len(t, cfg.BootClassPath, 1)
	assert.True(t, cfg.BootClassPath[0].IsArchive)
	assert.Equal(t, "aotc-rt.jar", filepath.Base(cfg.BootClassPath[0].File))

	require.Len(t, cfg.ClassPath, 1)
	assert.False(t, cfg.ClassPath[0].IsArchive)
	assert.Equal(t, "classes0.jar", filepath.Base(cfg.ClassPath[0].Archive))
	assert.Contains(t, cfg.ClassPath[0].ObjectDir, filepath.Join("object", "debug", "linux", "arm64", "default"))
}

func TestResolve_Release(t *testing.T) {
	w := newWorkspace(t)

	out, err := execute(t, append([]string{"resolve"}, w.args("--release", "--cpu", "cortex-a53")...)...)
	require.NoError(t, err)

	var cfg printedConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "release", cfg.Variant)
	assert.Contains(t, cfg.ClassPath[0].ObjectDir, filepath.Join("object", "release", "linux", "arm64", "cortex-a53"))
}

func TestResolve_ConfigFile(t *testing.T) {
	w := newWorkspace(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, domain.ConfigFileName)
	content := "home: " + w.home + "\n" +
		"cacheDir: " + w.cacheDir + "\n" +
		"os: darwin\n" +
		"arch: x86_64\n" +
		"skipLinking: true\n" +
		"classpath: [" + w.classes + "]\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	out, err := execute(t, "resolve", "--config", configPath, "--log-format", "plain", "--arch", "arm64")
	require.NoError(t, err)

	var cfg printedConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "darwin", cfg.OS)
	assert.Equal(t, "arm64", cfg.Arch, "flags win over the config file")
	assert.True(t, cfg.SkipInstall, "skipping the link step skips installation")
	assert.Empty(t, cfg.Target)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(w *workspace) []string
		wantErr error
	}{
		{
			name:    "unsupported os",
			args:    func(w *workspace) []string { return w.args("--os", "plan9") },
			wantErr: domain.ErrInvalidOS,
		},
		{
			name:    "unknown log format",
			args:    func(w *workspace) []string { return w.args("--log-format", "xml") },
			wantErr: domain.ErrInvalidLogFormat,
		},
		{
			name: "empty classpath",
			args: func(w *workspace) []string {
				return []string{"--no-config", "--home", w.home, "--os", "linux", "--arch", "x86", "--output", "hello"}
			},
			wantErr: domain.ErrEmptyClassPath,
		},
		{
			name: "missing home",
			args: func(w *workspace) []string {
				return w.args("--home", filepath.Join(w.home, "missing"))
			},
			wantErr: domain.ErrHomeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorkspace(t)

			_, err := execute(t, append([]string{"resolve"}, tt.args(w)...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestArchive(t *testing.T) {
	w := newWorkspace(t)

	out, err := execute(t, append([]string{"archive"}, w.args()...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	fields := strings.Fields(lines[1])
	require.Len(t, fields, 2)
	assert.Equal(t, "classes0.jar", filepath.Base(fields[1]))
	assert.FileExists(t, fields[1])
}

func TestArchive_Explicit(t *testing.T) {
	w := newWorkspace(t)
	output := filepath.Join(t.TempDir(), "out.jar")

	_, err := execute(t, "archive", "--log-format", "plain", "--from", w.classes, "--to", output, "--skip-classes")
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestArchive_FromRequiresTo(t *testing.T) {
	w := newWorkspace(t)

	_, err := execute(t, "archive", "--from", w.classes)
	require.Error(t, err)
}

func TestClean(t *testing.T) {
	w := newWorkspace(t)

	_, err := execute(t, append([]string{"archive"}, w.args()...)...)
	require.NoError(t, err)

	out, err := execute(t, append([]string{"clean", "--bitcode"}, w.args()...)...)
	require.NoError(t, err)
	assert.Equal(t, "✓ "+filepath.Join(w.cacheDir, "llvm")+"\n", out)

	entries, err := os.ReadDir(filepath.Join(w.cacheDir, "llvm"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "aotc version dev (none, unknown)\n", out)
}

func TestVerboseShorthand(t *testing.T) {
	w := newWorkspace(t)

	out, err := execute(t, w.args("resolve", "-v")...)
	require.NoError(t, err)
	assert.Contains(t, out, "variant: debug")

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
