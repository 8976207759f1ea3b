package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pathlib"
)

const journalName = "journal.jsonl"

var (
	fileMutex sync.Mutex
	spacing   = regexp.MustCompile(`\s+`)
)

// Event is one journaled milestone of a supervised run. Events are
// append-only; nothing ever rewrites the journal.
type Event struct {
	When       int64  `json:"when"`
	Id         string `json:"id"`
	Controller string `json:"controller"`
	Kind       string `json:"kind"`
	Unit       string `json:"unit"`
	Detail     string `json:"detail"`
}

func filename() string {
	return filepath.Join(common.Home(), journalName)
}

// Unify collapses all whitespace runs into single spaces, so that
// multiline details stay one journal line.
func Unify(value string) string {
	return strings.TrimSpace(spacing.ReplaceAllString(value, " "))
}

// NewRunId mints the identity one supervised run carries through its
// start/exit/stop events.
func NewRunId() string {
	return uuid.New().String()
}

// Post appends one event to the run journal. Journaling is advisory:
// callers log failures but never fail an operation over them.
func Post(kind, unit, form string, details ...interface{}) error {
	return PostWithId(NewRunId(), kind, unit, form, details...)
}

// PostWithId appends one event under a caller-chosen run identity, so
// that the start, exit and stop of one run share their id.
func PostWithId(id, kind, unit, form string, details ...interface{}) error {
	event := Event{
		When:       time.Now().Unix(),
		Id:         id,
		Controller: common.ControllerType,
		Kind:       kind,
		Unit:       unit,
		Detail:     Unify(fmt.Sprintf(form, details...)),
	}
	content, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize journal event: %w", err)
	}
	fileMutex.Lock()
	defer fileMutex.Unlock()
	if _, err := pathlib.EnsureDirectory(common.Home()); err != nil {
		return err
	}
	sink, err := os.OpenFile(filename(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open journal: %w", err)
	}
	defer sink.Close()
	if _, err := fmt.Fprintf(sink, "%s\n", content); err != nil {
		return fmt.Errorf("could not append journal event: %w", err)
	}
	return nil
}

// Events reads the full journal, oldest first. Unparseable lines are
// skipped; a partially written tail must not hide the rest.
func Events() ([]Event, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	source, err := os.Open(filename())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	defer source.Close()
	events := []Event{}
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 256*1024), 256*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		event := Event{}
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			common.Trace("skipping corrupt journal line: %v", err)
			continue
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

// Recent returns the newest events up to the given limit, oldest of
// them first.
func Recent(limit int) ([]Event, error) {
	events, err := Events()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events, nil
}
