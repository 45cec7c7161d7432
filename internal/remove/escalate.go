package remove

import (
	"context"
	"fmt"
	"os"
)

// TakeOwnership (M8) seizes a path that survived normal deletion, grants
// the current user full control, and retries the delete. Success means the
// path is gone afterwards.
func (r *Remover) TakeOwnership(ctx context.Context, path string, res *Result) bool {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			res.record(StepTakeOwnership, true, "already gone")
			return true
		}
		res.record(StepTakeOwnership, false, err.Error())
		return false
	}
	if r.dryRun {
		res.record(StepTakeOwnership, true, "dry run: takeown + icacls + delete "+path)
		return true
	}

	recursive := info.IsDir()

	takeownArgs := []string{"/F", path}
	icaclsArgs := []string{path, "/grant", "%USERNAME%:F"}
	if recursive {
		takeownArgs = append(takeownArgs, "/R", "/D", "Y")
		icaclsArgs = append(icaclsArgs, "/T", "/C", "/Q")
	}

	cctx, cancel := context.WithTimeout(ctx, r.takeownTimeout)
	out, code, err := r.exec(cctx, "takeown", takeownArgs...)
	cancel()
	if err != nil || code != 0 {
		log.Warn("takeown", "path", path, "detail", commandDetail(code, out, err))
	}

	cctx, cancel = context.WithTimeout(ctx, r.takeownTimeout)
	out, code, err = r.exec(cctx, "icacls", icaclsArgs...)
	cancel()
	if err != nil || code != 0 {
		log.Warn("icacls", "path", path, "detail", commandDetail(code, out, err))
	}

	if err := os.RemoveAll(path); err != nil {
		res.record(StepTakeOwnership, false, fmt.Sprintf("delete after ownership: %v", err))
		return false
	}
	if _, err := os.Stat(path); err == nil {
		res.record(StepTakeOwnership, false, "path still present")
		return false
	}
	res.record(StepTakeOwnership, true, "")
	return true
}
