package common

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	ProductName = `flightdeck`

	// HomeVariable relocates the directory where flightdeck keeps its
	// own files (settings, journal). Unset means ~/.flightdeck.
	HomeVariable = `FLIGHTDECK_HOME`

	// ChildPathVariable is injected into every supervised process so
	// that intra-repo imports resolve against the monorepo root.
	ChildPathVariable = `PYTHONPATH`
)

var (
	LogLinenumbers bool

	// ControllerType tells the journal who drove an operation
	// (interactive user, headless run, unit test).
	ControllerType = `user`

	verbosity  sync.Mutex
	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

func DefineVerbosity(silent, debug, trace bool) {
	verbosity.Lock()
	defer verbosity.Unlock()
	silentFlag = silent
	debugFlag = debug || trace
	traceFlag = trace
}

func Silent() bool {
	verbosity.Lock()
	defer verbosity.Unlock()
	return silentFlag
}

func DebugFlag() bool {
	verbosity.Lock()
	defer verbosity.Unlock()
	return debugFlag
}

func TraceFlag() bool {
	verbosity.Lock()
	defer verbosity.Unlock()
	return traceFlag
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

// Home resolves the flightdeck home directory. The directory is not
// created here; callers that write into it ensure it first.
func Home() string {
	if custom := os.Getenv(HomeVariable); len(custom) > 0 {
		return ExpandPath(custom)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ExpandPath(".flightdeck")
	}
	return filepath.Join(home, ".flightdeck")
}
