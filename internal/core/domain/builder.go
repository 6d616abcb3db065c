package domain

import "slices"

// Params holds the collected inputs of a build before validation.
type Params struct {
	Home       string
	LLVMHome   string
	GCCBinPath string
	ARBinPath  string
	CacheDir   string

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

	InstallDir string
	TmpDir     string
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	p.BootClassPath = slices.Clone(p.BootClassPath)
	p.ClassPath = slices.Clone(p.ClassPath)
	return p
}

// Builder accumulates build inputs. Every setter returns the builder for chaining.
type Builder struct {
	params Params
}

// NewBuilder creates a builder for a debug build.
func NewBuilder() *Builder {
	return &Builder{params: Params{Debug: true}}
}

// Params returns an independent snapshot of the collected inputs.
func (b *Builder) Params() Params {
	return b.params.Clone()
}

// AddClassPathEntry appends an entry to the application class path.
func (b *Builder) AddClassPathEntry(path string) *Builder {
	b.params.ClassPath = append(b.params.ClassPath, path)
	return b
}

// AddBootClassPathEntry appends an entry to the boot class path.
func (b *Builder) AddBootClassPathEntry(path string) *Builder {
	b.params.BootClassPath = append(b.params.BootClassPath, path)
	return b
}

// MainJar sets the main archive, which is appended to the class path on validation.
func (b *Builder) MainJar(path string) *Builder {
	b.params.MainJar = path
	return b
}

// InstallDir sets the directory the executable is installed to.
func (b *Builder) InstallDir(dir string) *Builder {
	b.params.InstallDir = dir
	return b
}

// Target sets the target name.
func (b *Builder) Target(target string) *Builder {
	b.params.Target = target
	return b
}

// Home sets the compiler home directory.
func (b *Builder) Home(dir string) *Builder {
	b.params.Home = dir
	return b
}

// CacheDir sets the cache root.
func (b *Builder) CacheDir(dir string) *Builder {
	b.params.CacheDir = dir
	return b
}

// Clean requests a build from scratch.
func (b *Builder) Clean(clean bool) *Builder {
	b.params.Clean = clean
	return b
}

// LLVMHome sets the backend home directory.
func (b *Builder) LLVMHome(dir string) *Builder {
	b.params.LLVMHome = dir
	return b
}

// GCCBinPath overrides the C compiler driver used for linking.
func (b *Builder) GCCBinPath(path string) *Builder {
	b.params.GCCBinPath = path
	return b
}

// ARBinPath overrides the archiver used for static libraries.
func (b *Builder) ARBinPath(path string) *Builder {
	b.params.ARBinPath = path
	return b
}

// OS overrides the target operating system.
func (b *Builder) OS(os OS) *Builder {
	b.params.OS = os
	return b
}

// Arch overrides the target architecture.
func (b *Builder) Arch(arch Arch) *Builder {
	b.params.Arch = arch
	return b
}

// CPU sets the target CPU variant.
func (b *Builder) CPU(cpu string) *Builder {
	b.params.CPU = cpu
	return b
}

// Debug selects the debug or release variant.
func (b *Builder) Debug(debug bool) *Builder {
	b.params.Debug = debug
	return b
}

// SkipRuntimeLib leaves the runtime support archive off the boot class path.
func (b *Builder) SkipRuntimeLib(skip bool) *Builder {
	b.params.SkipRuntimeLib = skip
	return b
}

// SkipLinking stops the build before linking. It implies SkipInstall.
func (b *Builder) SkipLinking(skip bool) *Builder {
	b.params.SkipLinking = skip
	return b
}

// SkipInstall stops the build before installing.
func (b *Builder) SkipInstall(skip bool) *Builder {
	b.params.SkipInstall = skip
	return b
}

// MainClass sets the fully qualified main class.
func (b *Builder) MainClass(name string) *Builder {
	b.params.MainClass = name
	return b
}

// TmpDir sets the temporary working directory.
func (b *Builder) TmpDir(dir string) *Builder {
	b.params.TmpDir = dir
	return b
}
