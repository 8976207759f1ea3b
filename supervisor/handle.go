package supervisor

import (
	"bufio"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/journal"
)

// lineBacklog bounds how many undrained output lines a handle keeps.
// The shell drains one line per poll tick, so a very chatty child can
// outrun it; old lines are dropped in favor of new ones then.
const lineBacklog = 4096

// Handle is one supervised child process. It is created by Start and
// forgotten by Stop or by the shell observing the exit.
type Handle struct {
	Unit    discovery.Descriptor
	RunId   string
	Started time.Time

	command *exec.Cmd
	lines   chan string
	done    chan struct{}
	exited  atomic.Bool
	code    atomic.Int64
}

func newHandle(unit discovery.Descriptor, command *exec.Cmd) *Handle {
	handle := &Handle{
		Unit:    unit,
		RunId:   journal.NewRunId(),
		Started: time.Now(),
		command: command,
		lines:   make(chan string, lineBacklog),
		done:    make(chan struct{}),
	}
	handle.code.Store(-1)
	return handle
}

func (it *Handle) Pid() int {
	if it.command.Process == nil {
		return 0
	}
	return it.command.Process.Pid
}

// Alive is true until the process has reported an exit status.
func (it *Handle) Alive() bool {
	return !it.exited.Load()
}

// ExitCode reports the exit status once the process is gone. The
// boolean stays false while the process is still alive.
func (it *Handle) ExitCode() (int, bool) {
	if it.Alive() {
		return 0, false
	}
	return int(it.code.Load()), true
}

// Wait blocks until the process has exited. Headless runs use this;
// the shell polls TryLine/Alive instead.
func (it *Handle) Wait() int {
	<-it.done
	return int(it.code.Load())
}

// Stream hands out the full line stream for blocking consumption.
// Headless runs range over it; the channel closes at output end.
func (it *Handle) Stream() <-chan string {
	return it.lines
}

// TryLine drains one buffered output line without blocking, so a
// silent child never stalls the poll loop.
func (it *Handle) TryLine() (string, bool) {
	select {
	case line, ok := <-it.lines:
		return line, ok
	default:
		return "", false
	}
}

// pump moves merged child output from the pipe into the line backlog.
// It owns the read end and closes the lines channel at stream end.
func (it *Handle) pump(source *os.File) {
	defer source.Close()
	defer close(it.lines)
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)
	for scanner.Scan() {
		line := scanner.Text()
		select {
		case it.lines <- line:
		default:
			// Backlog full; sacrifice the oldest line.
			select {
			case <-it.lines:
			default:
			}
			it.lines <- line
		}
	}
}

// await observes the exit status and journals it.
func (it *Handle) await() {
	err := it.command.Wait()
	code := 0
	if exit, ok := err.(*exec.ExitError); ok {
		code = exit.ExitCode()
	} else if err != nil {
		code = 1
	}
	it.code.Store(int64(code))
	it.exited.Store(true)
	close(it.done)
	common.Debug("unit %q pid %d exited with code %d", it.Unit.Name, it.Pid(), code)
	journal.PostWithId(it.RunId, "exit", it.Unit.Name, "exit code %d", code)
}

func (it *Handle) exitCode() int {
	return int(it.code.Load())
}

// reportLeftovers warns about child processes that survived a stop.
// Stopping signals the whole process group, but a grandchild that has
// detached into its own group escapes the sweep.
func (it *Supervisor) reportLeftovers(name string, handle *Handle) {
	pid := handle.Pid()
	if pid == 0 {
		return
	}
	processes, err := ps.Processes()
	if err != nil {
		return
	}
	for _, process := range processes {
		if process.PPid() == pid {
			common.Log("Warning: process %d (%s) left behind by unit %q", process.Pid(), process.Executable(), name)
		}
	}
}

// ChildCount counts direct children of the given pid, for the ps
// command's listing.
func ChildCount(pid int) int {
	processes, err := ps.Processes()
	if err != nil {
		return 0
	}
	count := 0
	for _, process := range processes {
		if process.PPid() == pid {
			count++
		}
	}
	return count
}
