// Package detect finds catalog-listed applications across independent OS
// surfaces. Each surface is a Detector; all detectors report through a
// shared accumulator that deduplicates by display name, first report wins.
package detect

import (
	"context"
	"strings"

	"github.com/sweepkit/agent/internal/logging"
	"github.com/sweepkit/agent/internal/signature"
)

var log = logging.L("detect")

// Method identifies the surface a detection came from.
type Method string

const (
	MethodRegistry   Method = "registry"
	MethodPackage    Method = "package"
	MethodFilesystem Method = "filesystem"
	MethodInventory  Method = "inventory"
	MethodStartMenu  Method = "startmenu"
)

// Detection is one application found on the system, matched against the
// signature catalog. Optional fields are best-effort and depend on the
// surface that produced the record.
type Detection struct {
	// Name is the display name as observed on the system. Dedup key.
	Name     string `json:"name"`
	Category string `json:"category"`
	Method   Method `json:"method"`

	Version   string `json:"version,omitempty"`
	Publisher string `json:"publisher,omitempty"`

	// InstallLocation is the primary path targeted by file deletion.
	InstallLocation string `json:"installLocation,omitempty"`
	// UninstallCommand is the registered uninstaller invocation.
	// Present for registry and inventory detections only.
	UninstallCommand string `json:"uninstallCommand,omitempty"`
	// ProductCode is the MSI product GUID, when the installer registered one.
	ProductCode string `json:"productCode,omitempty"`
	// PackageFullName identifies an Appx package for removal.
	// Present for package detections only.
	PackageFullName string `json:"packageFullName,omitempty"`
	// RegistryKeyPath is the fully qualified uninstall key, e.g.
	// `HKEY_LOCAL_MACHINE\SOFTWARE\...\Uninstall\{GUID}`.
	// Present for registry detections only.
	RegistryKeyPath string `json:"registryKeyPath,omitempty"`

	// VendorHint widens cleanup searches beyond the exact app name.
	VendorHint string `json:"vendorHint,omitempty"`
	// DetectionTerm is the canonical catalog name that matched; cleanup
	// re-derives search terms from it.
	DetectionTerm string `json:"detectionTerm"`
	// Reason is the catalog's removal justification, carried for display.
	Reason string `json:"reason,omitempty"`

	// Heuristic marks filesystem and Start Menu detections, which lack
	// authoritative metadata and deserve extra scrutiny before removal.
	Heuristic bool `json:"heuristic,omitempty"`
}

// IsPackage reports whether the candidate can be removed through the
// package manager.
func (d Detection) IsPackage() bool {
	return d.Method == MethodPackage && d.PackageFullName != ""
}

// Accumulator collects detections across detectors and enforces the dedup
// invariant: one detection per case-insensitive display name, first wins.
type Accumulator struct {
	seen       map[string]bool
	detections []Detection
}

func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[string]bool)}
}

// Add records a detection unless its name is empty or already present.
// Returns true if the detection was accepted.
func (a *Accumulator) Add(d Detection) bool {
	if d.Name == "" {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(d.Name))
	if a.seen[key] {
		return false
	}
	a.seen[key] = true
	a.detections = append(a.detections, d)
	log.Info("detected", "method", d.Method, "name", d.Name, "category", d.Category)
	return true
}

// Detections returns the accepted detections in insertion order.
func (a *Accumulator) Detections() []Detection {
	out := make([]Detection, len(a.detections))
	copy(out, a.detections)
	return out
}

// Detector scans one OS surface for catalog matches. Implementations are
// read-only toward the system and toward each other; they report solely
// through the accumulator. A returned error means the whole surface was
// unavailable, not that an individual item failed.
type Detector interface {
	Name() string
	Scan(ctx context.Context, catalog *signature.Catalog, acc *Accumulator) error
}
