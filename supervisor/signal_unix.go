//go:build !windows

package supervisor

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup isolates the child into its own process group, so
// that stop signals reach the grandchildren an app spawns (uv starts
// python, python may start workers).
func setProcessGroup(command *exec.Cmd) {
	command.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func signalGroup(command *exec.Cmd, signal unix.Signal) {
	if command.Process == nil {
		return
	}
	pid := command.Process.Pid
	if err := unix.Kill(-pid, signal); err != nil {
		// Group may be gone already; fall back to the process itself.
		unix.Kill(pid, signal)
	}
}

func terminate(command *exec.Cmd) {
	signalGroup(command, unix.SIGTERM)
}

func kill(command *exec.Cmd) {
	signalGroup(command, unix.SIGKILL)
}
