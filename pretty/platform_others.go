//go:build !windows

package pretty

func localSetup(interactive bool) {
	Iconic = interactive
}
