package conf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pathlib"
)

// Store is a dotted-key view over one JSON document. Interior path
// segments always resolve to mappings; setting through a scalar
// replaces that scalar with a fresh mapping.
type Store struct {
	filename string
	document map[string]interface{}
}

// NewStore loads the document behind filename. A missing or corrupt
// file yields an empty document; explicit existence checks belong to
// ReadDocument.
func NewStore(filename string) *Store {
	store := &Store{filename: filename}
	store.Load()
	return store
}

func (it *Store) Filename() string {
	return it.filename
}

// Load replaces the in-memory document from disk. Corruption is
// swallowed into an empty document so that a broken file can always be
// repaired by the next Save.
func (it *Store) Load() {
	it.document = make(map[string]interface{})
	content, err := os.ReadFile(it.filename)
	if err != nil {
		return
	}
	parsed := make(map[string]interface{})
	if err := json.Unmarshal(content, &parsed); err != nil {
		common.Trace("ignoring corrupt config %q: %v", it.filename, err)
		return
	}
	it.document = parsed
}

func (it *Store) Save() error {
	if _, err := pathlib.EnsureDirectory(filepath.Dir(it.filename)); err != nil {
		return err
	}
	content, err := json.MarshalIndent(it.document, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}
	return os.WriteFile(it.filename, content, 0o644)
}

func (it *Store) Get(dotted string, fallback interface{}) interface{} {
	current := it.document
	segments := strings.Split(dotted, ".")
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]interface{})
		if !ok {
			return fallback
		}
		current = next
	}
	value, ok := current[segments[len(segments)-1]]
	if !ok {
		return fallback
	}
	return value
}

func (it *Store) Set(dotted string, value interface{}) {
	current := it.document
	segments := strings.Split(dotted, ".")
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// Delete removes the value at the dotted path. An unresolvable path is
// a no-op, not an error.
func (it *Store) Delete(dotted string) {
	current := it.document
	segments := strings.Split(dotted, ".")
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]interface{})
		if !ok {
			return
		}
		current = next
	}
	delete(current, segments[len(segments)-1])
}

// AsMap hands out a shallow copy of the top level, so callers cannot
// silently bypass Set/Delete.
func (it *Store) AsMap() map[string]interface{} {
	result := make(map[string]interface{}, len(it.document))
	for key, value := range it.document {
		result[key] = value
	}
	return result
}

// ReadDocument parses a named JSON document. Unlike Store.Load, a
// missing or broken file here is the caller's problem.
func ReadDocument(filename string) (map[string]interface{}, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", filename, err)
	}
	document := make(map[string]interface{})
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", filename, err)
	}
	return document, nil
}
