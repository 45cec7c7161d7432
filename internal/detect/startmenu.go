package detect

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sweepkit/agent/internal/knownpaths"
	"github.com/sweepkit/agent/internal/signature"
)

// StartMenuDetector matches shortcut and folder names directly under the
// common and per-user Start Menu program directories. Heuristic: a shortcut
// name carries no version, publisher, or install path.
type StartMenuDetector struct {
	// Dirs overrides the scanned Start Menu directories.
	Dirs []string
}

func (StartMenuDetector) Name() string { return "startmenu" }

func (d StartMenuDetector) Scan(ctx context.Context, catalog *signature.Catalog, acc *Accumulator) error {
	dirs := d.Dirs
	if len(dirs) == 0 {
		dirs = knownpaths.StartMenuDirs()
	}

	sigs := catalog.Entries()
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("scan start menu", "dir", dir, "error", err)
			continue
		}
		for _, entry := range entries {
			matchStartMenuEntry(shortcutStem(entry.Name()), sigs, acc)
		}
	}
	return nil
}

func matchStartMenuEntry(name string, sigs []signature.Entry, acc *Accumulator) {
	for _, sig := range sigs {
		if !signature.MatchesText(name, sig.Detection) {
			continue
		}
		acc.Add(Detection{
			Name:          name,
			Category:      sig.Category,
			Method:        MethodStartMenu,
			DetectionTerm: sig.Name,
			Reason:        sig.Reason,
			Heuristic:     true,
		})
		return
	}
}

// shortcutStem strips the .lnk extension so the shortcut's display name is
// what gets matched and recorded.
func shortcutStem(name string) string {
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".lnk") {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
