package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/watcher"
)

func TestChangesAreDebouncedIntoOneNotification(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	home := t.TempDir()
	watch, err := watcher.New(50 * time.Millisecond)
	must.Nil(err)
	defer watch.Close()
	watch.Watch(home)

	for at := 0; at < 3; at++ {
		filename := filepath.Join(home, "main.py")
		must.Nil(os.WriteFile(filename, []byte("print('hello')\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-watch.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification arrived")
	}

	// The burst collapsed; no second notification is pending.
	select {
	case <-watch.Changes():
		t.Fatal("burst was not debounced")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNotificationsResumeAfterQuietPeriod(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	home := t.TempDir()
	watch, err := watcher.New(50 * time.Millisecond)
	must.Nil(err)
	defer watch.Close()
	watch.Watch(home)

	filename := filepath.Join(home, "job.py")
	must.Nil(os.WriteFile(filename, []byte("print('one')\n"), 0o644))
	select {
	case <-watch.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("first notification never arrived")
	}

	// The timer is reused after firing; a fresh burst must schedule a
	// fresh notification, not replay a stale tick early.
	must.Nil(os.WriteFile(filename, []byte("print('two')\n"), 0o644))
	select {
	case <-watch.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("second notification never arrived")
	}
}

func TestMissingDirectoriesAreSkippedQuietly(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	watch, err := watcher.New(0)
	must.Nil(err)
	defer watch.Close()
	watch.Watch(filepath.Join(t.TempDir(), "does", "not", "exist"))
}
