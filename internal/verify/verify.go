// Package verify performs the read-only post-removal checks: did the
// application actually disappear from the registry, the filesystem, the
// process table and the package inventory.
package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/logging"
	"github.com/sweepkit/agent/internal/signature"
)

var log = logging.L("verify")

const packageQueryTimeout = 30 * time.Second

// Result holds one surface verdict per check. A surface that does not
// apply to the candidate (no registry key, not a package) is reported
// clean.
type Result struct {
	RegistryClean   bool `json:"registry_clean"`
	FilesystemClean bool `json:"filesystem_clean"`
	ProcessesClean  bool `json:"processes_clean"`
	PackageClean    bool `json:"package_clean"`
}

// Clean reports full removal: every surface must be clean.
func (r Result) Clean() bool {
	return r.RegistryClean && r.FilesystemClean && r.ProcessesClean && r.PackageClean
}

// PackageCountFunc returns how many installed packages still carry the
// given package full name. Injected in tests.
type PackageCountFunc func(ctx context.Context, packageFullName string) (int, error)

// Verifier runs the checks. The zero value uses the real system surfaces.
type Verifier struct {
	Catalog      *signature.Catalog
	PackageCount PackageCountFunc
}

// Verify checks every surface for one candidate. Check errors are logged
// and treated as "not clean" so a broken check can never mask residue.
func (v *Verifier) Verify(ctx context.Context, d detect.Detection) Result {
	res := Result{
		RegistryClean:   v.registryClean(d),
		FilesystemClean: v.filesystemClean(d),
		ProcessesClean:  v.processesClean(ctx, d),
		PackageClean:    v.packageClean(ctx, d),
	}
	log.Info("verification",
		logging.KeyApp, d.Name,
		"registry", res.RegistryClean,
		"filesystem", res.FilesystemClean,
		"processes", res.ProcessesClean,
		"package", res.PackageClean)
	return res
}

func (v *Verifier) filesystemClean(d detect.Detection) bool {
	if d.InstallLocation == "" {
		return true
	}
	_, err := os.Stat(d.InstallLocation)
	return os.IsNotExist(err)
}

func (v *Verifier) processesClean(ctx context.Context, d detect.Detection) bool {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		log.Warn("list processes", "error", err)
		return false
	}

	terms := v.terms(d)
	installLoc := strings.ToLower(d.InstallLocation)
	for _, p := range procs {
		if installLoc != "" {
			if exe, err := p.ExeWithContext(ctx); err == nil && exe != "" &&
				strings.HasPrefix(strings.ToLower(exe), installLoc) {
				return false
			}
		}
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		lower := strings.ToLower(name)
		for _, t := range terms {
			if strings.Contains(lower, t) {
				return false
			}
		}
	}
	return true
}

func (v *Verifier) packageClean(ctx context.Context, d detect.Detection) bool {
	if !d.IsPackage() {
		return true
	}
	count := v.PackageCount
	if count == nil {
		count = countInstalledPackages
	}
	n, err := count(ctx, d.PackageFullName)
	if err != nil {
		log.Warn("query package inventory", logging.KeyApp, d.Name, "error", err)
		return false
	}
	return n == 0
}

// terms lowers the catalog detection terms for process matching, keeping
// only stems long enough to not match unrelated binaries.
func (v *Verifier) terms(d detect.Detection) []string {
	var raw []string
	if v.Catalog != nil {
		if sig, ok := v.Catalog.Get(d.DetectionTerm); ok {
			raw = sig.Detection
		}
	}
	if len(raw) == 0 {
		raw = []string{d.Name}
	}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if len(t) > 3 {
			out = append(out, t)
		}
	}
	return out
}

func countInstalledPackages(ctx context.Context, packageFullName string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, packageQueryTimeout)
	defer cancel()

	script := fmt.Sprintf(
		"(Get-AppxPackage -AllUsers | Where-Object { $_.PackageFullName -eq '%s' } | Measure-Object).Count",
		packageFullName)
	cmd := exec.CommandContext(ctx, "powershell",
		"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", script)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("verify: powershell: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strconv.Atoi(strings.TrimSpace(stdout.String()))
}
