package remove

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sweepkit/agent/internal/knownpaths"
)

// ScheduleBootDelete (M9) drops a self-deleting batch script into the
// user's Startup folder that removes the path at next logon, for files
// held open by drivers or protected services. The last resort.
func (r *Remover) ScheduleBootDelete(appName, path string, res *Result) bool {
	if err := validateScriptPath(path); err != nil {
		res.record(StepBootTimeDelete, false, err.Error())
		return false
	}

	startup := r.startupDir
	if startup == "" {
		startup = knownpaths.StartupDir()
	}
	if startup == "" {
		res.record(StepBootTimeDelete, false, "no startup directory")
		return false
	}

	scriptPath := filepath.Join(startup, "cleanup-"+sanitizeScriptName(appName)+".bat")
	script := bootDeleteScript(path)

	if r.dryRun {
		res.record(StepBootTimeDelete, true, "dry run: would write "+scriptPath)
		return true
	}

	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		res.record(StepBootTimeDelete, false, fmt.Sprintf("write script: %v", err))
		return false
	}
	if err := registerRebootDelete(path); err != nil {
		log.Warn("register delay-until-reboot delete", "path", path, "error", err)
	}
	log.Info("scheduled boot-time delete", "script", scriptPath, "target", path)
	res.record(StepBootTimeDelete, true, "scheduled via "+scriptPath)
	return true
}

// bootDeleteScript waits out early-logon file locks, removes the target as
// both a directory and a file, then deletes itself.
func bootDeleteScript(path string) string {
	var b strings.Builder
	b.WriteString("@echo off\r\n")
	b.WriteString("timeout /t 5 /nobreak >nul\r\n")
	fmt.Fprintf(&b, "rd /s /q \"%s\"\r\n", path)
	fmt.Fprintf(&b, "del /f /q \"%s\"\r\n", path)
	b.WriteString("del \"%~f0\"\r\n")
	return b.String()
}

// validateScriptPath rejects paths that could break out of the quoted
// batch arguments.
func validateScriptPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("remove: empty path")
	}
	if strings.ContainsAny(path, "&|;><\"\n\r") {
		return fmt.Errorf("remove: unsafe characters in path %q", path)
	}
	return nil
}

// sanitizeScriptName keeps the script filename to letters, digits, dashes
// and underscores.
func sanitizeScriptName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}
