package logbuf

import (
	"strings"
	"sync"
	"time"
)

// Iconic controls whether level icons use Unicode or ASCII fallbacks.
// pretty.Setup owns the value once terminal capabilities are known.
var Iconic = true

type LogLevel int

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogTrace:
		return "TRACE"
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	default:
		return "???"
	}
}

func (l LogLevel) Icon() string {
	if !Iconic {
		return l.String()[:1]
	}
	switch l {
	case LogTrace:
		return "·"
	case LogDebug:
		return "○"
	case LogInfo:
		return "●"
	case LogWarn:
		return "▲"
	case LogError:
		return "✗"
	default:
		return "?"
	}
}

type LogEntry struct {
	Time    time.Time
	Level   LogLevel
	Source  string // originating tool ("uv", "uvicorn", "flightdeck")
	Message string
}

// LogBuffer is a bounded, thread-safe ring of log entries. Writers are
// the supervisor output drain and the common-logger interceptor;
// readers are the shell views.
type LogBuffer struct {
	entries  []LogEntry
	maxSize  int
	mu       sync.RWMutex
	onChange func()
}

func NewLogBuffer(maxSize int) *LogBuffer {
	if maxSize < 10 {
		maxSize = 10
	}
	return &LogBuffer{
		entries: make([]LogEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

func (lb *LogBuffer) SetOnChange(fn func()) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.onChange = fn
}

func (lb *LogBuffer) Add(level LogLevel, source, message string) {
	lb.mu.Lock()

	entry := LogEntry{
		Time:    time.Now(),
		Level:   level,
		Source:  source,
		Message: strings.TrimSpace(message),
	}
	lb.entries = append(lb.entries, entry)
	if len(lb.entries) > lb.maxSize {
		lb.entries = lb.entries[len(lb.entries)-lb.maxSize:]
	}
	notify := lb.onChange
	lb.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// AddLine files a raw subprocess line, guessing level and source from
// its content. Blank lines are dropped.
func (lb *LogBuffer) AddLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	level := LogInfo
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(line, "[T] "):
		level = LogTrace
	case strings.HasPrefix(line, "[D] "):
		level = LogDebug
	case strings.HasPrefix(line, "[N] "):
		level = LogInfo
	case strings.Contains(lower, "traceback (most recent call last)"):
		level = LogError
	case strings.Contains(lower, "error") || strings.Contains(lower, "failed"):
		level = LogError
	case strings.Contains(lower, "warning") || strings.Contains(lower, "warn"):
		level = LogWarn
	case strings.Contains(lower, "debug"):
		level = LogDebug
	}

	source := ""
	switch {
	case strings.HasPrefix(lower, "uvicorn") || strings.Contains(lower, "uvicorn running"):
		source = "uvicorn"
	case strings.HasPrefix(lower, "uv "), strings.HasPrefix(line, "uv:"):
		source = "uv"
		line = strings.TrimSpace(strings.TrimPrefix(line, "uv:"))
	}

	lb.Add(level, source, line)
}

// Recent copies out the N most recent entries, newest last.
func (lb *LogBuffer) Recent(n int) []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if n <= 0 || len(lb.entries) == 0 {
		return nil
	}
	if n > len(lb.entries) {
		n = len(lb.entries)
	}
	result := make([]LogEntry, n)
	copy(result, lb.entries[len(lb.entries)-n:])
	return result
}

func (lb *LogBuffer) All() []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	result := make([]LogEntry, len(lb.entries))
	copy(result, lb.entries)
	return result
}

func (lb *LogBuffer) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return len(lb.entries)
}

func (lb *LogBuffer) Clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.entries = lb.entries[:0]
}

type LogStats struct {
	Total  int
	Errors int
	Warns  int
}

func (lb *LogBuffer) Stats() LogStats {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	stats := LogStats{Total: len(lb.entries)}
	for _, entry := range lb.entries {
		switch entry.Level {
		case LogError:
			stats.Errors++
		case LogWarn:
			stats.Warns++
		}
	}
	return stats
}
