//go:build windows

package remove

import "golang.org/x/sys/windows"

// registerRebootDelete asks the session manager to delete the path during
// the next boot, before anything can reacquire a lock on it. Requires
// admin; runs as a second belt alongside the startup script.
func registerRebootDelete(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(p, nil, windows.MOVEFILE_DELAY_UNTIL_REBOOT)
}
