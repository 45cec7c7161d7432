package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sweepkit/agent/internal/signature"
)

const appxQueryTimeout = 120 * time.Second

const appxQueryCommand = `Get-AppxPackage -AllUsers | Select-Object Name, PackageFullName, Publisher, InstallLocation | ConvertTo-Json -Compress`

// AppxQueryFunc returns the raw JSON listing of installed Appx packages.
// Injected in tests; the default shells out to PowerShell.
type AppxQueryFunc func(ctx context.Context) ([]byte, error)

// AppxDetector scans the per-machine Appx package inventory.
type AppxDetector struct {
	Query AppxQueryFunc
}

func (AppxDetector) Name() string { return "package" }

func (d AppxDetector) Scan(ctx context.Context, catalog *signature.Catalog, acc *Accumulator) error {
	query := d.Query
	if query == nil {
		query = queryAppxPackages
	}

	out, err := query(ctx)
	if err != nil {
		// Package manager unavailable degrades to zero results.
		return fmt.Errorf("detect: appx query: %w", err)
	}

	pkgs, err := parseAppxJSON(out)
	if err != nil {
		return fmt.Errorf("detect: appx parse: %w", err)
	}

	sigs := catalog.Entries()
	for _, pkg := range pkgs {
		if pkg.Name == "" || pkg.PackageFullName == "" {
			continue
		}
		publisher := normalizePublisher(pkg.Publisher)

		for _, sig := range sigs {
			// Display names of Store apps are often generic; the full
			// package identifier is the distinctive handle, so both
			// are matched.
			if !signature.Matches(pkg.Name, publisher, sig.Detection) &&
				!signature.MatchesText(pkg.PackageFullName, sig.Detection) {
				continue
			}
			acc.Add(Detection{
				Name:            pkg.Name,
				Category:        sig.Category,
				Method:          MethodPackage,
				Version:         versionFromPackageFullName(pkg.PackageFullName),
				Publisher:       publisher,
				InstallLocation: pkg.InstallLocation,
				PackageFullName: pkg.PackageFullName,
				VendorHint:      publisher,
				DetectionTerm:   sig.Name,
				Reason:          sig.Reason,
			})
			break
		}
	}
	return nil
}

type appxPackage struct {
	Name            string `json:"Name"`
	PackageFullName string `json:"PackageFullName"`
	Publisher       string `json:"Publisher"`
	InstallLocation string `json:"InstallLocation"`
}

// parseAppxJSON handles ConvertTo-Json emitting a bare object for a single
// result and an array otherwise.
func parseAppxJSON(data []byte) ([]appxPackage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '{' {
		var one appxPackage
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, err
		}
		return []appxPackage{one}, nil
	}
	var many []appxPackage
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return nil, err
	}
	return many, nil
}

// normalizePublisher extracts the common name from a certificate-subject
// publisher string like `CN=Microsoft Corporation, O=..., C=US`.
func normalizePublisher(publisher string) string {
	idx := strings.Index(publisher, "CN=")
	if idx < 0 {
		return publisher
	}
	rest := publisher[idx+len("CN="):]
	if comma := strings.Index(rest, ","); comma >= 0 {
		rest = rest[:comma]
	}
	return strings.TrimSpace(rest)
}

// versionFromPackageFullName pulls the version segment out of
// `Name_Version_Arch__PublisherId`.
func versionFromPackageFullName(fullName string) string {
	parts := strings.Split(fullName, "_")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func queryAppxPackages(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, appxQueryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "powershell",
		"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", appxQueryCommand)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("powershell: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
