package signature

import (
	"sort"
	"strings"
)

// Entry describes one unwanted application: how to recognize it across OS
// surfaces and why it is flagged.
type Entry struct {
	// Name is the canonical application name and the unique catalog key.
	Name string `yaml:"name" json:"name"`
	// Category is a free-text classification tag (Bloatware, Adware, ...).
	Category string `yaml:"category" json:"category"`
	// Detection holds the case-insensitive substring/equality terms.
	Detection []string `yaml:"detection" json:"detection"`
	// Reason is the human-readable justification for removal. Optional.
	Reason string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Catalog is the read-only signature set consulted by the detectors.
// Entries are keyed by canonical name, case-insensitively.
type Catalog struct {
	entries map[string]Entry
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewCatalog builds a catalog from entries, later entries replacing earlier
// ones with the same canonical name (case-insensitive, last write wins).
// Empty detection terms are dropped; entries left without any usable term
// are dropped entirely.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		terms := make([]string, 0, len(e.Detection))
		for _, t := range e.Detection {
			if strings.TrimSpace(t) != "" {
				terms = append(terms, t)
			}
		}
		if len(terms) == 0 {
			continue
		}
		e.Detection = terms
		c.entries[normalizeKey(e.Name)] = e
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the entry for a canonical name, case-insensitively.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.entries[normalizeKey(name)]
	return e, ok
}

// Entries returns all entries sorted by canonical name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
