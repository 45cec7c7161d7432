//go:build windows

package verify

import (
	"golang.org/x/sys/windows/registry"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/regpath"
)

// registryClean reports whether the uninstall key that detected the
// application is gone from both registry views.
func (v *Verifier) registryClean(d detect.Detection) bool {
	if d.RegistryKeyPath == "" {
		return true
	}
	root, sub, err := regpath.Root(d.RegistryKeyPath)
	if err != nil {
		log.Warn("parse registry path", "path", d.RegistryKeyPath, "error", err)
		return false
	}
	for _, view := range []uint32{registry.WOW64_64KEY, registry.WOW64_32KEY} {
		k, err := registry.OpenKey(root, sub, registry.QUERY_VALUE|view)
		if err == nil {
			k.Close()
			return false
		}
	}
	return true
}
