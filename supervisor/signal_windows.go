//go:build windows

package supervisor

import "os/exec"

func setProcessGroup(command *exec.Cmd) {
}

// Windows has no graceful termination signal for console children, so
// both phases collapse into Kill.
func terminate(command *exec.Cmd) {
	kill(command)
}

func kill(command *exec.Cmd) {
	if command.Process != nil {
		command.Process.Kill()
	}
}
