package detect

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sweepkit/agent/internal/knownpaths"
	"github.com/sweepkit/agent/internal/signature"
)

// FilesystemDetector matches top-level entries of well-known install and
// app-data directories against detection terms by name alone. Catches
// portable installs and leftovers that registered nothing, at the price of
// low confidence: every hit is flagged heuristic. Does not recurse.
type FilesystemDetector struct {
	// Dirs overrides the scanned directories. Empty means the standard
	// install locations plus any configured extras.
	Dirs []string
	// ExtraDirs are appended to the standard set when Dirs is empty.
	ExtraDirs []string
}

func (FilesystemDetector) Name() string { return "filesystem" }

func (d FilesystemDetector) Scan(ctx context.Context, catalog *signature.Catalog, acc *Accumulator) error {
	dirs := d.Dirs
	if len(dirs) == 0 {
		dirs = append(knownpaths.InstallDirs(), d.ExtraDirs...)
	}

	sigs := catalog.Entries()
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Permission denied or a vanished directory; keep scanning
			// the rest.
			log.Warn("scan directory", "dir", dir, "error", err)
			continue
		}
		for _, entry := range entries {
			matchFilesystemEntry(dir, entry.Name(), sigs, acc)
		}
	}
	return nil
}

func matchFilesystemEntry(dir, name string, sigs []signature.Entry, acc *Accumulator) {
	for _, sig := range sigs {
		if !signature.MatchesText(name, sig.Detection) {
			continue
		}
		acc.Add(Detection{
			Name:            name,
			Category:        sig.Category,
			Method:          MethodFilesystem,
			InstallLocation: filepath.Join(dir, name),
			DetectionTerm:   sig.Name,
			Reason:          sig.Reason,
			Heuristic:       true,
		})
		return
	}
}
