package remove

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/knownpaths"
)

// deleteFiles (M5) removes the install directory and sweeps well-known
// locations for leftovers named after the application or its vendor.
func (r *Remover) deleteFiles(ctx context.Context, d detect.Detection, res *Result) {
	terms := simplifyTerms(append([]string{d.Name, d.VendorHint}, r.terms(d)...)...)

	mainOK := true
	deleted := 0
	var firstErr error

	if d.InstallLocation != "" {
		switch err := r.removePath(d.InstallLocation); {
		case err == nil:
			deleted++
		case os.IsNotExist(err):
			// Already gone, nothing to do.
		default:
			mainOK = false
			firstErr = err
			log.Warn("delete install location", "path", d.InstallLocation, "error", err)
		}
	}

	dirs := r.leftoverDirs
	if len(dirs) == 0 {
		dirs = knownpaths.LeftoverDirs()
	}
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			res.record(StepFileDelete, false, err.Error())
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !containsAnyTerm(entry.Name(), terms) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if strings.EqualFold(path, d.InstallLocation) {
				continue
			}
			if err := r.removePath(path); err != nil {
				log.Warn("delete leftover", "path", path, "error", err)
				continue
			}
			deleted++
			log.Info("deleted leftover", "path", path)
		}
	}

	// Success here means the method changed something; an already-absent
	// install location is no error, but it is not a change either.
	switch {
	case !mainOK:
		res.record(StepFileDelete, false, fmt.Sprintf("install location: %v", firstErr))
	case deleted == 0:
		res.record(StepFileDelete, false, "nothing to delete")
	default:
		res.record(StepFileDelete, true, fmt.Sprintf("deleted %d paths", deleted))
	}
}

// removePath deletes a file or directory tree. Dry run only logs.
func (r *Remover) removePath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if r.dryRun {
		log.Info("dry run: would delete", "path", path)
		return nil
	}
	return os.RemoveAll(path)
}
