package domain

import "path/filepath"

const (
	variantDebug   = "debug"
	variantRelease = "release"
)

// Config is the fully resolved configuration of a single build.
// It is produced by the configurator and must not be modified afterwards.
// It carries no logger: components that log receive a ports.Logger when they are constructed.
type Config struct {
	Home       string
	LLVMHome   string
	GCCBinPath string
	ARBinPath  string

	CacheDir       string
	LLVMCacheDir   string
	ObjectCacheDir string

	OS   OS
	Arch Arch
	CPU  string

	Debug          bool
	Clean          bool
	SkipRuntimeLib bool
	SkipLinking    bool
	SkipInstall    bool

	MainJar   string
	MainClass string
	Target    string

	BootClassPath []string
	ClassPath     []string

	InstallDir      string
	TmpDir          string
	OSArchDepLibDir string

	Classes Classes
	App     App
}

// Variant returns the build variant used as object cache partition.
func (c *Config) Variant() string {
	if c.Debug {
		return variantDebug
	}
	return variantRelease
}

// CPUOrDefault returns the configured CPU or "default" when none is set.
func (c *Config) CPUOrDefault() string {
	if c.CPU == "" {
		return DefaultCPU
	}
	return c.CPU
}

// LLVMBinDir returns the backend binary directory, or an empty string when
// binaries are looked up on PATH.
func (c *Config) LLVMBinDir() string {
	if c.LLVMHome == "" {
		return ""
	}
	return filepath.Join(c.LLVMHome, BinDirName)
}
