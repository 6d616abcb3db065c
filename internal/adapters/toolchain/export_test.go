package toolchain

import (
	"context"
	"os/exec"
)

// SetExecCommandContext replaces the command factory used by probes and returns a restore function.
func SetExecCommandContext(fn func(ctx context.Context, name string, args ...string) *exec.Cmd) func() {
	prev := execCommandContext
	execCommandContext = fn
	return func() {
		execCommandContext = prev
	}
}
