//go:build !windows

package verify

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
