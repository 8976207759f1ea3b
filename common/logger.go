package common

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

type logline struct {
	out     *os.File
	message string
}

var (
	logsource  = make(chan logline)
	logbarrier = sync.WaitGroup{}

	// The interceptor lets the interactive shell reroute engine logs
	// into its own buffer while bubbletea owns the terminal. Returning
	// true marks the message as handled.
	interceptorMutex sync.RWMutex
	logInterceptor   func(message string) bool
)

func SetLogInterceptor(interceptor func(message string) bool) {
	interceptorMutex.Lock()
	defer interceptorMutex.Unlock()
	logInterceptor = interceptor
}

func ClearLogInterceptor() {
	interceptorMutex.Lock()
	defer interceptorMutex.Unlock()
	logInterceptor = nil
}

func intercepted(message string) bool {
	interceptorMutex.RLock()
	interceptor := logInterceptor
	interceptorMutex.RUnlock()
	return interceptor != nil && interceptor(message)
}

// loggerLoop is the single owner of log output ordering.
func loggerLoop(source chan logline) {
	var stamp string
	line := uint64(0)
	for entry := range source {
		line += 1
		if TraceFlag() {
			stamp = time.Now().Format("02.150405.000 ")
		} else if LogLinenumbers {
			stamp = fmt.Sprintf("%3d ", line)
		} else {
			stamp = ""
		}
		fmt.Fprintf(entry.out, "%s%s\n", stamp, entry.message)
		entry.out.Sync()
		logbarrier.Done()
	}
}

func init() {
	go loggerLoop(logsource)
}

func printout(out *os.File, message string) {
	if intercepted(message) {
		return
	}
	logbarrier.Add(1)
	logsource <- logline{out, message}
}

func Fatal(context string, err error) {
	if err != nil {
		printout(os.Stderr, fmt.Sprintf("Fatal [%s]: %v", context, err))
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(os.Stderr, fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(os.Stderr, fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(os.Stderr, fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

func Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	fmt.Fprint(os.Stdout, message)
	os.Stdout.Sync()
}

// WaitLogs drains the log channel before the process exits, so that
// late messages are not lost to a fast shutdown.
func WaitLogs() {
	defer Timeline("wait logs done")

	runtime.Gosched()
	logbarrier.Wait()
}
