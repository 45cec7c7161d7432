package remove

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/sweepkit/agent/internal/detect"
)

// killProcesses (M4) terminates anything still running out of the target
// install. Locked executables make M5 pointless, so this always runs
// before file deletion.
func (r *Remover) killProcesses(ctx context.Context, d detect.Detection, res *Result) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		res.record(StepProcessKill, false, fmt.Sprintf("list processes: %v", err))
		return
	}

	terms := lowerTerms(r.terms(d))
	stem := processStem(d.Name)
	installLoc := strings.ToLower(d.InstallLocation)

	var killed, failed int
	for _, p := range procs {
		if !r.processMatches(ctx, p, installLoc, stem, terms) {
			continue
		}
		name, _ := p.NameWithContext(ctx)
		if r.dryRun {
			killed++
			log.Info("dry run: would terminate process", "pid", p.Pid, "name", name)
			continue
		}
		if r.stopProcess(ctx, p) {
			killed++
			log.Info("terminated process", "pid", p.Pid, "name", name)
		} else {
			failed++
			log.Warn("could not terminate process", "pid", p.Pid, "name", name)
		}
	}

	// No survivors means the method did its job, including the case where
	// nothing was running to begin with.
	res.record(StepProcessKill, failed == 0,
		fmt.Sprintf("terminated %d, failed %d", killed, failed))
}

// processMatches ties a running process to the application via its
// executable path, its conventional binary name, or a detection term in
// the process name.
func (r *Remover) processMatches(ctx context.Context, p *process.Process, installLoc, stem string, terms []string) bool {
	if installLoc != "" {
		if exe, err := p.ExeWithContext(ctx); err == nil && exe != "" {
			if strings.HasPrefix(strings.ToLower(exe), installLoc) {
				return true
			}
		}
	}
	name, err := p.NameWithContext(ctx)
	if err != nil || name == "" {
		return false
	}
	lower := strings.ToLower(name)
	if stem != "" && lower == stem {
		return true
	}
	return containsAnyTerm(lower, terms)
}

// processStem guesses the binary name from a display name: first word,
// lowered, with .exe appended. "McAfee LiveSafe" targets mcafee.exe.
func processStem(displayName string) string {
	fields := strings.Fields(displayName)
	if len(fields) == 0 {
		return ""
	}
	stem := strings.ToLower(fields[0])
	if len(stem) <= 3 {
		return ""
	}
	return stem + ".exe"
}

// stopProcess tries a graceful terminate first, then a hard kill. A
// process that vanished on its own counts as stopped; one we lack rights
// to does not, but the caller treats that as a partial result rather than
// aborting the sweep.
func (r *Remover) stopProcess(ctx context.Context, p *process.Process) bool {
	if err := p.TerminateWithContext(ctx); err == nil {
		if waitForExit(ctx, p, r.killGrace) {
			return true
		}
	}
	if err := p.KillWithContext(ctx); err != nil {
		return !processRunning(ctx, p)
	}
	return waitForExit(ctx, p, time.Second)
}

func waitForExit(ctx context.Context, p *process.Process, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if !processRunning(ctx, p) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(100 * time.Millisecond):
		}
	}
	return !processRunning(ctx, p)
}

func processRunning(ctx context.Context, p *process.Process) bool {
	running, err := p.IsRunningWithContext(ctx)
	return err == nil && running
}
