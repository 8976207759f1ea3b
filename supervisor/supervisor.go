package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"sync"
	"time"

	"github.com/google/shlex"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/journal"
)

var (
	ErrAlreadyRunning = errors.New("unit is already running")
	ErrEmptyCommand   = errors.New("unit has an empty run command")
)

// Supervisor owns the registry of supervised child processes. It is an
// explicit value handed into the shell, never a package-level global,
// so its lifetime follows the shell's own.
type Supervisor struct {
	mutex   sync.Mutex
	root    string
	timeout time.Duration
	handles map[string]*Handle
}

// New creates a supervisor rooted at the monorepo directory. The stop
// timeout bounds how long graceful termination may take before the
// forced kill.
func New(root string, stopTimeout time.Duration) *Supervisor {
	if stopTimeout <= 0 {
		stopTimeout = 5 * time.Second
	}
	return &Supervisor{
		root:    common.ExpandPath(root),
		timeout: stopTimeout,
		handles: make(map[string]*Handle),
	}
}

func (it *Supervisor) Root() string {
	return it.root
}

// Start launches the descriptor's command as a supervised child. The
// command is split into an argument vector without shell
// interpretation; pipes and redirections stay literal. At most one
// live handle exists per unit name: a still-running prior handle makes
// Start fail, a dead one is reaped and replaced.
func (it *Supervisor) Start(unit discovery.Descriptor) (*Handle, error) {
	arguments, err := shlex.Split(unit.Command)
	if err != nil {
		return nil, fmt.Errorf("could not split command %q: %w", unit.Command, err)
	}
	if len(arguments) == 0 {
		return nil, ErrEmptyCommand
	}

	it.mutex.Lock()
	defer it.mutex.Unlock()

	if previous, ok := it.handles[unit.Name]; ok {
		if previous.Alive() {
			return nil, fmt.Errorf("%w: %q", ErrAlreadyRunning, unit.Name)
		}
		delete(it.handles, unit.Name)
	}

	command := exec.Command(arguments[0], arguments[1:]...)
	command.Dir = it.root
	command.Env = append(os.Environ(), fmt.Sprintf("%s=%s", common.ChildPathVariable, it.root))
	setProcessGroup(command)

	// One pipe for both streams keeps child output ordered the way
	// the child interleaved it.
	reader, writer, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("could not create output pipe: %w", err)
	}
	command.Stdout = writer
	command.Stderr = writer

	if err := command.Start(); err != nil {
		reader.Close()
		writer.Close()
		return nil, fmt.Errorf("could not start %q: %w", unit.Command, err)
	}
	writer.Close()

	handle := newHandle(unit, command)
	it.handles[unit.Name] = handle
	go handle.pump(reader)
	go handle.await()

	common.Debug("started %q as pid %d", unit.Name, command.Process.Pid)
	journal.PostWithId(handle.RunId, "start", unit.Name, "command %q pid %d", unit.Command, command.Process.Pid)
	return handle, nil
}

// Stop terminates the named unit with the two-phase policy: graceful
// signal first, bounded wait, then forced kill. A missing handle is
// not an error; it just reports false. Timeout escalation is never
// surfaced as a failure.
func (it *Supervisor) Stop(name string) bool {
	it.mutex.Lock()
	handle, ok := it.handles[name]
	if ok {
		delete(it.handles, name)
	}
	it.mutex.Unlock()
	if !ok {
		return false
	}

	if handle.Alive() {
		terminate(handle.command)
		select {
		case <-handle.done:
		case <-time.After(it.timeout):
			common.Debug("graceful stop of %q timed out, killing", name)
			kill(handle.command)
			<-handle.done
		}
	}
	it.reportLeftovers(name, handle)
	journal.PostWithId(handle.RunId, "stop", name, "stopped, exit code %d", handle.exitCode())
	return true
}

// IsRunning reports whether the named unit has a registered handle
// whose process has not yet reported an exit status.
func (it *Supervisor) IsRunning(name string) bool {
	it.mutex.Lock()
	handle, ok := it.handles[name]
	it.mutex.Unlock()
	return ok && handle.Alive()
}

// Handle exposes the registered handle for a unit, when there is one.
// Callers must treat a false as "nothing to attach to", not an error.
func (it *Supervisor) Handle(name string) (*Handle, bool) {
	it.mutex.Lock()
	defer it.mutex.Unlock()
	handle, ok := it.handles[name]
	return handle, ok
}

// Running lists the names of units with live processes, sorted.
func (it *Supervisor) Running() []string {
	it.mutex.Lock()
	defer it.mutex.Unlock()
	names := []string{}
	for name, handle := range it.handles {
		if handle.Alive() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// StopAll stops every registered unit. Used on shell shutdown when the
// user asks for a clean exit.
func (it *Supervisor) StopAll() int {
	it.mutex.Lock()
	names := make([]string, 0, len(it.handles))
	for name := range it.handles {
		names = append(names, name)
	}
	it.mutex.Unlock()
	stopped := 0
	for _, name := range names {
		if it.Stop(name) {
			stopped++
		}
	}
	return stopped
}
