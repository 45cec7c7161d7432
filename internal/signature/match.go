package signature

import "strings"

// Matches reports whether an observed display name or publisher corresponds
// to any of the detection terms. A term matches if it is a case-insensitive
// substring of either value, or equals either value case-insensitively after
// trimming. Empty observed values never match; empty terms never match.
//
// Matching is deliberately substring-based for recall: a short term like
// "Java" will hit anything whose name or publisher contains it. The catalog
// accepts that false-positive risk, so detections are surfaced for user
// confirmation rather than removed automatically.
func Matches(displayName, publisher string, terms []string) bool {
	if displayName == "" && publisher == "" {
		return false
	}
	nameLower := strings.ToLower(displayName)
	pubLower := strings.ToLower(publisher)

	for _, term := range terms {
		termLower := strings.ToLower(term)
		if termLower == "" {
			continue
		}
		if strings.Contains(nameLower, termLower) || strings.Contains(pubLower, termLower) {
			return true
		}
		if equalFoldTrimmed(displayName, term) || equalFoldTrimmed(publisher, term) {
			return true
		}
	}
	return false
}

// MatchesText reports whether any detection term is a case-insensitive
// substring of a single observed string. Used for filename-only surfaces
// (filesystem entries, Start Menu shortcuts, raw package identifiers) where
// no publisher is available.
func MatchesText(observed string, terms []string) bool {
	if observed == "" {
		return false
	}
	obsLower := strings.ToLower(observed)
	for _, term := range terms {
		termLower := strings.ToLower(term)
		if termLower == "" {
			continue
		}
		if strings.Contains(obsLower, termLower) {
			return true
		}
	}
	return false
}

func equalFoldTrimmed(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
