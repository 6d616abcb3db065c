package config

// File represents the structure of the aotc.yaml configuration file.
// Pointer fields distinguish "unset" from the zero value so flags and defaults survive.
type File struct {
	Home       string `yaml:"home"`
	LLVMHome   string `yaml:"llvmHome"`
	GCCBinPath string `yaml:"gccBinPath"`
	ARBinPath  string `yaml:"arBinPath"`
	CacheDir   string `yaml:"cacheDir"`

	OS   string `yaml:"os"`
	Arch string `yaml:"arch"`
	CPU  string `yaml:"cpu"`

	Debug          *bool `yaml:"debug"`
	Clean          *bool `yaml:"clean"`
	SkipRuntimeLib *bool `yaml:"skipRuntimeLib"`
	SkipLinking    *bool `yaml:"skipLinking"`
	SkipInstall    *bool `yaml:"skipInstall"`

	MainJar   string `yaml:"mainJar"`
	MainClass string `yaml:"mainClass"`
	Target    string `yaml:"target"`

	InstallDir string `yaml:"installDir"`
	TmpDir     string `yaml:"tmpDir"`

	BootClassPath []string `yaml:"bootClasspath"`
	ClassPath     []string `yaml:"classpath"`
}
