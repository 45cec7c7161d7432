//go:build windows

package detect

// Detectors returns the scan order: cheap and reliable surfaces first
// (registry), then the package manager, the filesystem heuristic, the slow
// MSI inventory, and last the Start Menu heuristic. Ordering only decides
// which surface's metadata wins a dedup tie; the candidate set itself is
// order-independent.
func Detectors(extraScanDirs []string) []Detector {
	return []Detector{
		RegistryDetector{},
		AppxDetector{},
		FilesystemDetector{ExtraDirs: extraScanDirs},
		InventoryDetector{},
		StartMenuDetector{},
	}
}
