package watcher

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pathlib"
)

// DefaultDebounce separates editor write bursts from actual change
// notifications.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches the discovery directories and coalesces change
// bursts into single notifications on Changes. The shell turns those
// into automatic deck refreshes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	changes  chan struct{}
	closing  chan struct{}
	once     sync.Once
}

func New(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	source, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create filesystem watcher: %w", err)
	}
	it := &Watcher{
		watcher:  source,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		closing:  make(chan struct{}),
	}
	go it.loop()
	return it, nil
}

// Watch adds a directory to the watch set. Missing directories are
// skipped quietly; they may appear later through a manual refresh.
func (it *Watcher) Watch(directories ...string) {
	for _, directory := range directories {
		if !pathlib.IsDir(directory) {
			continue
		}
		if err := it.watcher.Add(directory); err != nil {
			common.Debug("could not watch %q: %v", directory, err)
			continue
		}
		common.Trace("watching %q", directory)
	}
}

// Changes delivers at most one pending notification; bursts inside the
// debounce window collapse into it.
func (it *Watcher) Changes() <-chan struct{} {
	return it.changes
}

func (it *Watcher) Close() {
	it.once.Do(func() {
		close(it.closing)
		it.watcher.Close()
	})
}

func (it *Watcher) loop() {
	var pending *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-it.closing:
			return
		case event, ok := <-it.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			common.Trace("filesystem change: %v", event)
			if pending == nil {
				pending = time.NewTimer(it.debounce)
				fire = pending.C
			} else {
				// A fired-but-unread timer must be drained before
				// Reset, or the stale tick notifies mid-burst.
				if !pending.Stop() {
					select {
					case <-fire:
					default:
					}
				}
				pending.Reset(it.debounce)
			}
		case err, ok := <-it.watcher.Errors:
			if !ok {
				return
			}
			common.Debug("watcher error: %v", err)
		case <-fire:
			pending = nil
			fire = nil
			select {
			case it.changes <- struct{}{}:
			default:
			}
		}
	}
}

// relevant filters out events that cannot change a discovery result,
// mostly editor temp file noise.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := event.Name
	if strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".swp") || strings.HasSuffix(name, ".tmp") {
		return false
	}
	return true
}
