package common

import (
	"fmt"
	"sync"
	"time"
)

type timelineEntry struct {
	when time.Duration
	what string
}

var (
	timelineMutex sync.Mutex
	timelineStart = time.Now()
	timelineItems []timelineEntry
)

// Timeline records one milestone since process start. Entries are only
// ever shown on demand (trace runs), so recording is always cheap.
func Timeline(form string, details ...interface{}) {
	entry := timelineEntry{
		when: time.Since(timelineStart),
		what: fmt.Sprintf(form, details...),
	}
	timelineMutex.Lock()
	defer timelineMutex.Unlock()
	timelineItems = append(timelineItems, entry)
}

func DisplayTimeline() {
	if !TraceFlag() {
		return
	}
	timelineMutex.Lock()
	entries := make([]timelineEntry, len(timelineItems))
	copy(entries, timelineItems)
	timelineMutex.Unlock()

	Trace("----  timeline  ----")
	for _, entry := range entries {
		Trace("%9.3fs  %s", entry.when.Seconds(), entry.what)
	}
	Trace("----  timeline  ----")
}
