package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/aotc/internal/app"
	"go.trai.ch/aotc/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// resolvedConfig is the printed form of a domain.Config.
type resolvedConfig struct {
	Home            string         `yaml:"home"`
	LLVMHome        string         `yaml:"llvmHome,omitempty"`
	GCCBinPath      string         `yaml:"gccBinPath,omitempty"`
	ARBinPath       string         `yaml:"arBinPath,omitempty"`
	CacheDir        string         `yaml:"cacheDir"`
	LLVMCacheDir    string         `yaml:"llvmCacheDir"`
	ObjectCacheDir  string         `yaml:"objectCacheDir"`
	OS              domain.OS      `yaml:"os"`
	Arch            domain.Arch    `yaml:"arch"`
	CPU             string         `yaml:"cpu"`
	Variant         string         `yaml:"variant"`
	Clean           bool           `yaml:"clean"`
	SkipRuntimeLib  bool           `yaml:"skipRuntimeLib"`
	SkipLinking     bool           `yaml:"skipLinking"`
	SkipInstall     bool           `yaml:"skipInstall"`
	MainJar         string         `yaml:"mainJar,omitempty"`
	MainClass       string         `yaml:"mainClass,omitempty"`
	Target          string         `yaml:"target,omitempty"`
	InstallDir      string         `yaml:"installDir,omitempty"`
	TmpDir          string         `yaml:"tmpDir"`
	OSArchDepLibDir string         `yaml:"osArchDepLibDir"`
	Executable      string         `yaml:"executable,omitempty"`
	BootClassPath   []resolvedPath `yaml:"bootClasspath"`
	ClassPath       []resolvedPath `yaml:"classpath"`
}

type resolvedPath struct {
	File           string `yaml:"file"`
	Index          int    `yaml:"index"`
	IsArchive      bool   `yaml:"isArchive"`
	Archive        string `yaml:"archive"`
	BitcodeDir     string `yaml:"bitcodeDir"`
	BitcodeLibrary string `yaml:"bitcodeLibrary"`
	ObjectDir      string `yaml:"objectDir"`
	StaticLibrary  string `yaml:"staticLibrary"`
}

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved build configuration and cache locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newResolvedConfig(cfg)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newResolvedConfig(cfg *domain.Config) resolvedConfig {
	out := resolvedConfig{
		Home:            cfg.Home,
		LLVMHome:        cfg.LLVMHome,
		GCCBinPath:      cfg.GCCBinPath,
		ARBinPath:       cfg.ARBinPath,
		CacheDir:        cfg.CacheDir,
		LLVMCacheDir:    cfg.LLVMCacheDir,
		ObjectCacheDir:  cfg.ObjectCacheDir,
		OS:              cfg.OS,
		Arch:            cfg.Arch,
		CPU:             cfg.CPUOrDefault(),
		Variant:         cfg.Variant(),
		Clean:           cfg.Clean,
		SkipRuntimeLib:  cfg.SkipRuntimeLib,
		SkipLinking:     cfg.SkipLinking,
		SkipInstall:     cfg.SkipInstall,
		MainJar:         cfg.MainJar,
		MainClass:       cfg.MainClass,
		Target:          cfg.Target,
		InstallDir:      cfg.InstallDir,
		TmpDir:          cfg.TmpDir,
		OSArchDepLibDir: cfg.OSArchDepLibDir,
	}
	if cfg.App != nil {
		out.Executable = cfg.App.Executable()
	}

	bootCount := 0
	if cfg.Classes != nil {
		bootCount = len(cfg.Classes.BootClassPath())
	}
	for i, plan := range app.Plan(cfg) {
		p := resolvedPath{
			File:           plan.Entry.File(),
			Index:          plan.Entry.Index(),
			IsArchive:      plan.Entry.IsArchive(),
			Archive:        plan.Archive,
			BitcodeDir:     plan.BitcodeDir,
			BitcodeLibrary: plan.BitcodeLibrary,
			ObjectDir:      plan.ObjectDir,
			StaticLibrary:  plan.StaticLibrary,
		}
		if i < bootCount {
			out.BootClassPath = append(out.BootClassPath, p)
		} else {
			out.ClassPath = append(out.ClassPath, p)
		}
	}

	return out
}
