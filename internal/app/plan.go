package app

import (
	"go.trai.ch/aotc/internal/adapters/cachelayout" //nolint:depguard // Pure path computation
	"go.trai.ch/aotc/internal/core/domain"
)

// EntryPlan lists where the artifacts derived from one class path entry live.
type EntryPlan struct {
	Entry          domain.ClassPathEntry
	Archive        string
	BitcodeDir     string
	BitcodeLibrary string
	ObjectDir      string
	StaticLibrary  string
}

// Plan computes the cache locations of every class path entry, boot entries first.
func Plan(cfg *domain.Config) []EntryPlan {
	layout := cachelayout.New(cfg)
	entries := Entries(cfg)

	plans := make([]EntryPlan, 0, len(entries))
	for _, e := range entries {
		archive := e.File()
		if !e.IsArchive() {
			archive = layout.ArchiveFile(e)
		}
		plans = append(plans, EntryPlan{
			Entry:          e,
			Archive:        archive,
			BitcodeDir:     layout.BitcodeDir(e),
			BitcodeLibrary: layout.BitcodeLibrary(e),
			ObjectDir:      layout.ObjectDir(e),
			StaticLibrary:  layout.StaticLibrary(e),
		})
	}
	return plans
}
