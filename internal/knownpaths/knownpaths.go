// Package knownpaths resolves the fixed sets of well-known Windows
// directories scanned by the filesystem detector and the leftover sweep.
// Resolution is environment-based so tests can redirect every path.
package knownpaths

import (
	"os"
	"path/filepath"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

func appDataLocal() string {
	return envOr("LOCALAPPDATA", filepath.Join(home(), "AppData", "Local"))
}

func appDataRoaming() string {
	return envOr("APPDATA", filepath.Join(home(), "AppData", "Roaming"))
}

// InstallDirs are the top-level locations where portable installs and
// leftover program directories are looked for.
func InstallDirs() []string {
	return dedupeExisting([]string{
		envOr("ProgramFiles", `C:\Program Files`),
		envOr("ProgramFiles(x86)", `C:\Program Files (x86)`),
		envOr("ProgramData", `C:\ProgramData`),
		appDataLocal(),
		appDataRoaming(),
	})
}

// LeftoverDirs are the locations swept for residue during file deletion.
func LeftoverDirs() []string {
	return dedupeExisting([]string{
		envOr("ProgramData", `C:\ProgramData`),
		appDataLocal(),
		appDataRoaming(),
		os.TempDir(),
		envOr("ProgramFiles", `C:\Program Files`),
		envOr("ProgramFiles(x86)", `C:\Program Files (x86)`),
		envOr("CommonProgramFiles", `C:\Program Files\Common Files`),
		envOr("CommonProgramFiles(x86)", `C:\Program Files (x86)\Common Files`),
	})
}

// StartMenuDirs are the common and per-user Start Menu program folders.
func StartMenuDirs() []string {
	return dedupeExisting([]string{
		filepath.Join(envOr("ProgramData", `C:\ProgramData`), "Microsoft", "Windows", "Start Menu", "Programs"),
		filepath.Join(appDataRoaming(), "Microsoft", "Windows", "Start Menu", "Programs"),
	})
}

// StartupDir is the per-user Startup folder used for boot-time deletion
// scripts. Returned even if absent; the caller creates it if needed.
func StartupDir() string {
	return filepath.Join(appDataRoaming(), "Microsoft", "Windows", "Start Menu", "Programs", "Startup")
}

// dedupeExisting drops duplicates and paths that don't exist, preserving
// order. Env fallbacks can alias each other, so dedupe comes first.
func dedupeExisting(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if _, err := os.Stat(p); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
