package classpath

import (
	"go.trai.ch/aotc/internal/adapters/fs"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports"
)

var (
	_ ports.ClassResolverFactory = (*Factory)(nil)
	_ domain.Classes             = (*Classes)(nil)
)

// Factory builds Classes from class path roots on the local file system.
type Factory struct {
	walker *fs.Walker
}

// NewFactory creates a new Factory.
func NewFactory(walker *fs.Walker) *Factory {
	return &Factory{walker: walker}
}

// NewClasses resolves both class paths. Entry indices restart at zero for each list.
func (f *Factory) NewClasses(bootClassPath, classPath []string) (domain.Classes, error) {
	boot, err := f.entries(bootClassPath)
	if err != nil {
		return nil, err
	}
	app, err := f.entries(classPath)
	if err != nil {
		return nil, err
	}
	return &Classes{boot: boot, app: app}, nil
}

func (f *Factory) entries(paths []string) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(paths))
	for i, p := range paths {
		e, err := NewEntry(p, i, f.walker)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Classes searches the boot class path before the application class path.
type Classes struct {
	boot []*Entry
	app  []*Entry
}

// BootClassPath returns the boot class path entries in search order.
func (c *Classes) BootClassPath() []domain.ClassPathEntry {
	return toDomain(c.boot)
}

// ClassPath returns the application class path entries in search order.
func (c *Classes) ClassPath() []domain.ClassPathEntry {
	return toDomain(c.app)
}

// Lookup returns the first entry providing name. Unreadable entries are skipped.
func (c *Classes) Lookup(name string) (domain.ClassPathEntry, bool) {
	for _, list := range [][]*Entry{c.boot, c.app} {
		for _, e := range list {
			if ok, err := e.Contains(name); err == nil && ok {
				return e, true
			}
		}
	}
	return nil, false
}

func toDomain(entries []*Entry) []domain.ClassPathEntry {
	out := make([]domain.ClassPathEntry, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}
