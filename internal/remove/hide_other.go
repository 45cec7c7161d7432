//go:build !windows

package remove

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
