package domain

import "path/filepath"

const (
	// AppDirName is the name of the per-user application directory.
	AppDirName = ".aotc"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// LLVMCacheDirName is the name of the bitcode cache directory below the cache root.
	LLVMCacheDirName = "llvm"

	// ObjectCacheDirName is the name of the object cache directory below the cache root.
	ObjectCacheDirName = "object"

	// LocksDirName is the name of the directory holding archive lock files below the cache root.
	LocksDirName = "locks"

	// HomeEnvVar is the environment variable naming the compiler home directory.
	HomeEnvVar = "AOTC_HOME"

	// LibDirName is the name of the library directory below the compiler home.
	LibDirName = "lib"

	// BinDirName is the name of the binary directory below a toolchain home.
	BinDirName = "bin"

	// RuntimeArchiveName is the name of the runtime support archive below <home>/lib.
	RuntimeArchiveName = "aotc-rt.jar"

	// ProbeBinary is the name of the backend binary queried for its host triple.
	ProbeBinary = "llc"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "aotc.yaml"

	// TempDirPattern is the pattern used for fresh temporary working directories.
	TempDirPattern = "aotc-*"

	// ClassesDirSuffix is appended to archive names to form cache directory names.
	ClassesDirSuffix = ".classes"

	// DefaultCPU is the path segment used when no CPU variant is configured.
	DefaultCPU = "default"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the default cache root below the given user home directory.
// It joins home, .aotc and cache.
func DefaultCacheRoot(userHome string) string {
	return filepath.Join(userHome, AppDirName, CacheDirName)
}

// RuntimeArchivePath returns the location of the runtime support archive below the compiler home.
func RuntimeArchivePath(home string) string {
	return filepath.Join(home, LibDirName, RuntimeArchiveName)
}

// OSArchLibDir returns the native library directory for an OS/architecture pair.
// It joins home, lib, os and arch.
func OSArchLibDir(home string, os OS, arch Arch) string {
	return filepath.Join(home, LibDirName, string(os), string(arch))
}
