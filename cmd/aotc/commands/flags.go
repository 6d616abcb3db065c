package commands

import (
	"github.com/spf13/pflag"
	"go.trai.ch/aotc/internal/app"
	"go.trai.ch/aotc/internal/core/domain"
)

// inputFlags holds the build input flags shared by every command that resolves a configuration.
// Only flags set on the command line are applied, so config file values survive.
type inputFlags struct {
	config   string
	noConfig bool

	home       string
	llvmHome   string
	gccBinPath string
	arBinPath  string
	cacheDir   string

	os   string
	arch string
	cpu  string

	release        bool
	clean          bool
	skipRuntimeLib bool
	skipLinking    bool
	skipInstall    bool

	mainJar   string
	mainClass string
	target    string

	installDir string
	tmpDir     string

	bootClassPath []string
	classPath     []string
}

func registerInputFlags(fs *pflag.FlagSet) *inputFlags {
	f := &inputFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "Path to the config file (default: nearest "+domain.ConfigFileName+")")
	fs.BoolVar(&f.noConfig, "no-config", false, "Ignore config files")

	fs.StringVar(&f.home, "home", "", "Compiler home directory (default: $"+domain.HomeEnvVar+")")
	fs.StringVar(&f.llvmHome, "llvm-home", "", "LLVM installation to use (default: llc from PATH)")
	fs.StringVar(&f.gccBinPath, "cc", "", "C compiler used for linking")
	fs.StringVar(&f.arBinPath, "ar", "", "Archiver used for static libraries")
	fs.StringVar(&f.cacheDir, "cache-dir", "", "Cache root (default: ~/.aotc/cache)")

	fs.StringVar(&f.os, "os", "", "Target operating system (default: host of llc)")
	fs.StringVar(&f.arch, "arch", "", "Target architecture (default: host of llc)")
	fs.StringVar(&f.cpu, "cpu", "", "Target CPU")

	fs.BoolVar(&f.release, "release", false, "Build the release variant")
	fs.BoolVar(&f.clean, "clean", false, "Discard cached artifacts before building")
	fs.BoolVar(&f.skipRuntimeLib, "skip-rt", false, "Do not add the runtime library to the boot classpath")
	fs.BoolVar(&f.skipLinking, "skip-link", false, "Do not link an executable")
	fs.BoolVar(&f.skipInstall, "skip-install", false, "Do not install the executable")

	fs.StringVar(&f.mainJar, "jar", "", "Main archive, appended to the classpath")
	fs.StringVar(&f.mainClass, "main-class", "", "Main class of the application")
	fs.StringVarP(&f.target, "output", "o", "", "Name of the executable (default: main class)")

	fs.StringVarP(&f.installDir, "dir", "d", "", "Install directory (default: ./<output>)")
	fs.StringVar(&f.tmpDir, "tmp", "", "Temporary working directory (default: fresh directory)")

	fs.StringArrayVar(&f.bootClassPath, "bootclasspath", nil, "Boot classpath entry (repeatable)")
	fs.StringArrayVar(&f.classPath, "classpath", nil, "Classpath entry (repeatable)")

	return f
}

func (f *inputFlags) resolveOptions(fs *pflag.FlagSet) (app.ResolveOptions, error) {
	var (
		goos domain.OS
		arch domain.Arch
		err  error
	)
	if fs.Changed("os") {
		if goos, err = domain.ParseOSName(f.os); err != nil {
			return app.ResolveOptions{}, err
		}
	}
	if fs.Changed("arch") {
		if arch, err = domain.ParseArchName(f.arch); err != nil {
			return app.ResolveOptions{}, err
		}
	}

	apply := func(b *domain.Builder) {
		values := []struct {
			name string
			set  func(string) *domain.Builder
			val  string
		}{
			{"home", b.Home, f.home},
			{"llvm-home", b.LLVMHome, f.llvmHome},
			{"cc", b.GCCBinPath, f.gccBinPath},
			{"ar", b.ARBinPath, f.arBinPath},
			{"cache-dir", b.CacheDir, f.cacheDir},
			{"cpu", b.CPU, f.cpu},
			{"jar", b.MainJar, f.mainJar},
			{"main-class", b.MainClass, f.mainClass},
			{"output", b.Target, f.target},
			{"dir", b.InstallDir, f.installDir},
			{"tmp", b.TmpDir, f.tmpDir},
		}
		for _, s := range values {
			if fs.Changed(s.name) {
				s.set(s.val)
			}
		}

		switches := []struct {
			name string
			set  func(bool) *domain.Builder
			val  bool
		}{
			{"release", b.Debug, !f.release},
			{"clean", b.Clean, f.clean},
			{"skip-rt", b.SkipRuntimeLib, f.skipRuntimeLib},
			{"skip-link", b.SkipLinking, f.skipLinking},
			{"skip-install", b.SkipInstall, f.skipInstall},
		}
		for _, o := range switches {
			if fs.Changed(o.name) {
				o.set(o.val)
			}
		}

		if goos != "" {
			b.OS(goos)
		}
		if arch != "" {
			b.Arch(arch)
		}
		for _, entry := range f.bootClassPath {
			b.AddBootClassPathEntry(entry)
		}
		for _, entry := range f.classPath {
			b.AddClassPathEntry(entry)
		}
	}

	return app.ResolveOptions{
		ConfigPath: f.config,
		NoConfig:   f.noConfig,
		Overrides:  apply,
	}, nil
}
