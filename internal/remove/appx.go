package remove

import (
	"context"
	"fmt"

	"github.com/sweepkit/agent/internal/detect"
)

// removePackage uninstalls a Store app, first machine-wide, then for the
// current user when the all-users form is rejected (non-admin sessions).
func (r *Remover) removePackage(ctx context.Context, d detect.Detection, res *Result) {
	if d.PackageFullName == "" {
		res.record(StepAppxRemove, false, "no package full name")
		return
	}
	if r.dryRun {
		res.record(StepAppxRemove, true, "dry run: Remove-AppxPackage "+d.PackageFullName)
		return
	}

	cctx, cancel := context.WithTimeout(ctx, r.uninstallTimeout)
	defer cancel()

	script := fmt.Sprintf("Remove-AppxPackage -Package '%s' -AllUsers", d.PackageFullName)
	out, code, err := r.runPowershell(cctx, script)
	if err == nil && code == 0 {
		res.record(StepAppxRemove, true, "")
		return
	}

	script = fmt.Sprintf("Remove-AppxPackage -Package '%s'", d.PackageFullName)
	out, code, err = r.runPowershell(cctx, script)
	res.record(StepAppxRemove, err == nil && code == 0, commandDetail(code, out, err))
}

func (r *Remover) runPowershell(ctx context.Context, script string) (string, int, error) {
	return r.exec(ctx, "powershell",
		"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", script)
}
