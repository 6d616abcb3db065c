package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfiguration is the category of every error raised while validating build inputs.
	ErrInvalidConfiguration = zerr.New("invalid configuration")

	// ErrToolchainProbe is the category of every error raised while querying the native backend.
	ErrToolchainProbe = zerr.New("toolchain probe failed")
)

var (
	// ErrHomeNotSet is returned when no home directory was given and AOTC_HOME is unset.
	ErrHomeNotSet = zerr.Wrap(ErrInvalidConfiguration, "environment variable "+HomeEnvVar+" not set")

	// ErrHomeNotFound is returned when the home directory does not exist.
	ErrHomeNotFound = zerr.Wrap(ErrInvalidConfiguration, "home directory not found")

	// ErrHomeNotDirectory is returned when the home directory is not a directory.
	ErrHomeNotDirectory = zerr.Wrap(ErrInvalidConfiguration, "home directory is not a directory")

	// ErrEmptyClassPath is returned when no class path entry and no main archive were given.
	ErrEmptyClassPath = zerr.Wrap(ErrInvalidConfiguration, "no classpath specified")

	// ErrNoTarget is returned when linking is requested without a target or a main class.
	ErrNoTarget = zerr.Wrap(ErrInvalidConfiguration, "no target and no main class specified")

	// ErrInvalidOS is returned when an explicitly configured operating system is not supported.
	ErrInvalidOS = zerr.Wrap(ErrInvalidConfiguration, "unsupported operating system")

	// ErrInvalidArch is returned when an explicitly configured architecture is not supported.
	ErrInvalidArch = zerr.Wrap(ErrInvalidConfiguration, "unsupported architecture")

	// ErrClassPathNoMatch is returned when a class path pattern matches no file.
	ErrClassPathNoMatch = zerr.Wrap(ErrInvalidConfiguration, "classpath pattern matched nothing")

	// ErrClassPathPattern is returned when a class path pattern is malformed.
	ErrClassPathPattern = zerr.Wrap(ErrInvalidConfiguration, "malformed classpath pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.Wrap(ErrInvalidConfiguration, "failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.Wrap(ErrInvalidConfiguration, "failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.Wrap(ErrInvalidConfiguration, "config file not found")

	// ErrInvalidLogFormat is returned when the requested log format is unknown.
	ErrInvalidLogFormat = zerr.Wrap(ErrInvalidConfiguration, "invalid log format")
)

var (
	// ErrProbeFailed is returned when the backend binary cannot be run or exits with an unexpected code.
	ErrProbeFailed = zerr.Wrap(ErrToolchainProbe, "failed to get Host string from llc")

	// ErrHostNotFound is returned when the backend's version output has no Host line.
	ErrHostNotFound = zerr.Wrap(ErrToolchainProbe, "no Host line in llc version output")

	// ErrUnrecognizedOS is returned when the host triple names no known operating system.
	ErrUnrecognizedOS = zerr.Wrap(ErrToolchainProbe, "unrecognized OS")

	// ErrUnrecognizedArch is returned when the host triple names no known architecture.
	ErrUnrecognizedArch = zerr.Wrap(ErrToolchainProbe, "unrecognized architecture")
)

var (
	// ErrCacheDirCreateFailed is returned when a cache root cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrTempDirCreateFailed is returned when the temporary working directory cannot be allocated.
	ErrTempDirCreateFailed = zerr.New("failed to create temporary directory")

	// ErrInstallDirCreateFailed is returned when the install directory cannot be created.
	ErrInstallDirCreateFailed = zerr.New("failed to create install directory")

	// ErrUserHomeNotFound is returned when the invoking user's home directory cannot be determined.
	ErrUserHomeNotFound = zerr.New("failed to determine user home directory")

	// ErrClassPathResolveFailed is returned when a class path entry cannot be resolved.
	ErrClassPathResolveFailed = zerr.New("failed to resolve classpath entry")

	// ErrArchiveCreateFailed is returned when an archive cannot be written.
	ErrArchiveCreateFailed = zerr.New("failed to create archive")

	// ErrArchiveLockFailed is returned when the advisory lock guarding an archive cannot be taken.
	ErrArchiveLockFailed = zerr.New("failed to lock archive")

	// ErrStalenessCheckFailed is returned when a class path entry cannot be checked for changes.
	ErrStalenessCheckFailed = zerr.New("failed to check classpath entry for changes")

	// ErrOutputStrategyFailed is returned when the output strategy cannot produce the application.
	ErrOutputStrategyFailed = zerr.New("output strategy failed")

	// ErrCleanFailed is returned when a cache directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean cache")
)
