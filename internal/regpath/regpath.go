// Package regpath renders and parses fully qualified registry key paths of
// the form `HKEY_LOCAL_MACHINE\SOFTWARE\...`. Detections carry these paths
// as plain strings; cleanup and verification parse them back into an
// openable (hive, subpath) pair before touching anything.
package regpath

import (
	"fmt"
	"strings"
)

// Hive names as rendered into detection records.
const (
	HiveLocalMachine = "HKEY_LOCAL_MACHINE"
	HiveCurrentUser  = "HKEY_CURRENT_USER"
)

// Join renders a hive name and subpath into one qualified path string.
func Join(hive, subPath string) string {
	return hive + `\` + subPath
}

// SplitQualified separates a qualified path into hive name and subpath.
// Short or long hive prefixes are accepted.
func SplitQualified(path string) (hive, subPath string, err error) {
	parts := strings.SplitN(path, `\`, 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", "", fmt.Errorf("regpath: malformed key path %q", path)
	}
	switch strings.ToUpper(parts[0]) {
	case "HKLM", HiveLocalMachine:
		return HiveLocalMachine, parts[1], nil
	case "HKCU", HiveCurrentUser:
		return HiveCurrentUser, parts[1], nil
	default:
		return "", "", fmt.Errorf("regpath: unsupported hive in %q", path)
	}
}
