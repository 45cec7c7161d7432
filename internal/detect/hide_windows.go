//go:build windows

package detect

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps console-less helper invocations from flashing a window.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
