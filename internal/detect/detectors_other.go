//go:build !windows

package detect

// Detectors returns no scanners: every detection surface this tool knows
// about is Windows-specific.
func Detectors(extraScanDirs []string) []Detector {
	return nil
}
