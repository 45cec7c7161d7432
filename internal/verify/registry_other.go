//go:build !windows

package verify

import "github.com/sweepkit/agent/internal/detect"

func (v *Verifier) registryClean(d detect.Detection) bool {
	// No registry off Windows; the surface is vacuously clean.
	return true
}
