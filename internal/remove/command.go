package remove

import (
	"fmt"
	"path/filepath"
	"strings"
)

// silentRule describes how one installer family is driven unattended.
// The first rule whose executable matches wins; a rule with no names is
// the fallback for unrecognized installers.
type silentRule struct {
	// exeNames are matched case-insensitively against the command's
	// executable base name.
	exeNames []string
	// verbSwap rewrites interactive verbs to their removal form, both as
	// a standalone argument and as a prefix of a joined argument
	// (msiexec accepts `/I{GUID}`).
	verbSwap map[string]string
	// quietFlags mark a command already silent; matched case-insensitively.
	quietFlags []string
	// inject is appended when no quiet flag is present.
	inject string
}

var silentRules = []silentRule{
	{
		exeNames:   []string{"msiexec", "msiexec.exe"},
		verbSwap:   map[string]string{"/i": "/x"},
		quietFlags: []string{"/qn", "/quiet"},
		inject:     "/qn",
	},
	{
		quietFlags: []string{"/s", "/silent", "/verysilent", "-s", "-silent", "-ms", "--silent"},
		inject:     "/S",
	},
}

// BuildUninstallCommand turns a registry UninstallString into an
// executable plus arguments forced into unattended mode. The input is
// vendor-supplied and frequently sloppy (unquoted paths with spaces,
// interactive verbs), so the result is best effort.
func BuildUninstallCommand(raw string) (string, []string, error) {
	words, err := splitCommand(raw)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, fmt.Errorf("remove: empty uninstall command")
	}

	exe, args := words[0], words[1:]
	rule := ruleFor(exe)
	args = rule.rewrite(args)
	return exe, args, nil
}

// isMsiexec reports whether the executable is Windows Installer.
func isMsiexec(exe string) bool {
	base := strings.ToLower(filepath.Base(strings.Trim(exe, `"`)))
	return base == "msiexec" || base == "msiexec.exe"
}

func ruleFor(exe string) silentRule {
	base := strings.ToLower(filepath.Base(strings.Trim(exe, `"`)))
	for _, r := range silentRules {
		if len(r.exeNames) == 0 {
			return r
		}
		for _, name := range r.exeNames {
			if base == name {
				return r
			}
		}
	}
	return silentRules[len(silentRules)-1]
}

func (r silentRule) rewrite(args []string) []string {
	out := make([]string, 0, len(args)+1)
	quiet := false
	for _, arg := range args {
		lower := strings.ToLower(arg)
		for verb, repl := range r.verbSwap {
			if lower == verb {
				arg = repl
				lower = repl
				break
			}
			if strings.HasPrefix(lower, verb+"{") {
				arg = repl + arg[len(verb):]
				lower = strings.ToLower(arg)
				break
			}
		}
		for _, q := range r.quietFlags {
			if lower == q {
				quiet = true
				break
			}
		}
		out = append(out, arg)
	}
	if !quiet && r.inject != "" {
		out = append(out, r.inject)
	}
	return out
}

// splitCommand tokenizes a command line, honoring double quotes. When the
// line has no quotes at all and its first token is not an existing idiom
// like `msiexec /x ...`, vendors sometimes emit an unquoted path with
// spaces; the quote-aware split still yields a usable executable in the
// common cases, and the uninstall attempt simply fails for the rest.
func splitCommand(raw string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("remove: unbalanced quotes in command %q", raw)
	}
	flush()
	return words, nil
}
