package remove

import (
	"regexp"
	"strings"
)

var simplifyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(.*\)`),
	regexp.MustCompile(`\s*v?\d+(\.\d+)*$`),
	regexp.MustCompile(`(?i)\s+Setup$`),
	regexp.MustCompile(`(?i)\s+Suite$`),
	regexp.MustCompile(`(?i)\s+Application$`),
	regexp.MustCompile(`(?i)\s+Driver$`),
	regexp.MustCompile(`(?i)\s+Utility$`),
}

// simplifyTerms reduces display names and vendor strings to the stable
// stems used for sweeping registry keys and services: parenthesized
// qualifiers, trailing versions and generic suffixes are stripped, and a
// space-free variant is added for each stem. Stems shorter than four
// characters are dropped because they match far too much.
func simplifyTerms(names ...string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if len(term) <= 3 || seen[term] {
			return
		}
		seen[term] = true
		out = append(out, term)
	}

	for _, name := range names {
		stem := name
		for _, re := range simplifyPatterns {
			stem = re.ReplaceAllString(stem, "")
		}
		stem = strings.TrimSpace(stem)
		add(stem)
		if strings.Contains(stem, " ") {
			add(strings.ReplaceAll(stem, " ", ""))
		}
	}
	return out
}

// lowerTerms lowers raw detection terms, dropping stems too short to
// match safely.
func lowerTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if len(t) > 3 {
			out = append(out, t)
		}
	}
	return out
}

// containsAnyTerm reports whether the lowered value contains any term.
func containsAnyTerm(value string, terms []string) bool {
	lower := strings.ToLower(value)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// equalsAnyTerm reports whether the lowered value equals any term.
func equalsAnyTerm(value string, terms []string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, t := range terms {
		if lower == t {
			return true
		}
	}
	return false
}
