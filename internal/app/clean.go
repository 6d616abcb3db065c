package app

import (
	"fmt"
	"os"

	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions selects the caches removed by Clean.
type CleanOptions struct {
	Bitcode bool
	Objects bool
}

// Clean empties the selected cache trees and returns the directories that were emptied.
// The cache roots themselves are recreated so a following build can use them.
func (a *App) Clean(cfg *domain.Config, opts CleanOptions) ([]string, error) {
	var dirs []string
	if opts.Bitcode {
		dirs = append(dirs, cfg.LLVMCacheDir)
	}
	if opts.Objects {
		dirs = append(dirs, cfg.ObjectCacheDir)
	}

	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", dir)
		}
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", dir)
		}
		a.logger.Debug(fmt.Sprintf("removed %s", dir))
	}

	return dirs, nil
}
