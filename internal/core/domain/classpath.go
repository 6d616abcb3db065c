package domain

import "time"

// ClassPathEntry is a single ordinal-indexed root of compiled classes,
// either one archive file or one directory tree.
type ClassPathEntry interface {
	// File returns the canonical absolute location of the root.
	File() string
	// Index returns the ordinal of the entry within its class path.
	Index() int
	// IsArchive reports whether the root is a single archive file.
	IsArchive() bool
	// HasChangedSince reports whether anything below the root was modified after t.
	HasChangedSince(t time.Time) (bool, error)
}

// Classes resolves classes and resources against the boot and application class paths.
type Classes interface {
	// BootClassPath returns the boot class path entries in search order.
	BootClassPath() []ClassPathEntry
	// ClassPath returns the application class path entries in search order.
	ClassPath() []ClassPathEntry
	// Lookup returns the first entry providing the given slash-separated resource name.
	Lookup(name string) (ClassPathEntry, bool)
}

// App is the packaged application produced by an output strategy.
type App interface {
	// Name returns the application name.
	Name() string
	// Executable returns the location the native executable is written to.
	Executable() string
}
