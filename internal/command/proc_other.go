//go:build !unix

package command

import "os/exec"

// setProcessGroup is a no-op where process groups are not available.
// WaitDelay still bounds how long Wait drains the pipes.
func setProcessGroup(*exec.Cmd) {}
