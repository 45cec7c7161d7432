package signature

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sweepkit/agent/internal/logging"
)

var log = logging.L("signature")

// overlayFile is the on-disk shape of a signature overlay.
type overlayFile struct {
	Signatures []Entry `yaml:"signatures"`
}

// Load builds the catalog from the built-in entries plus any overlay files,
// merged in order with last write winning per canonical name. A missing or
// malformed overlay is an error; the built-in catalog alone never is.
func Load(overlayPaths []string) (*Catalog, error) {
	entries := builtin()

	for _, path := range overlayPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("signature: read overlay %s: %w", path, err)
		}
		var f overlayFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("signature: parse overlay %s: %w", path, err)
		}
		log.Info("merging signature overlay", "path", path, "entries", len(f.Signatures))
		entries = append(entries, f.Signatures...)
	}

	c := NewCatalog(entries)
	if dropped := rawCount(entries) - c.Len(); dropped > 0 {
		log.Warn("dropped unusable signature entries", "dropped", dropped)
	}
	return c, nil
}

// rawCount counts entries that carry a distinct usable name, mirroring the
// catalog's merge key so the dropped count reflects bad entries, not merges.
func rawCount(entries []Entry) int {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			seen[normalizeKey(e.Name)] = true
		}
	}
	return len(seen)
}
