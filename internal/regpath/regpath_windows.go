//go:build windows

package regpath

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Root resolves a qualified path to a registry root key and subpath.
func Root(path string) (registry.Key, string, error) {
	hive, subPath, err := SplitQualified(path)
	if err != nil {
		return 0, "", err
	}
	switch hive {
	case HiveLocalMachine:
		return registry.LOCAL_MACHINE, subPath, nil
	case HiveCurrentUser:
		return registry.CURRENT_USER, subPath, nil
	}
	return 0, "", fmt.Errorf("regpath: unsupported hive %q", hive)
}
