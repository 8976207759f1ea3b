package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/flightdeck-io/flightdeck/anywork"
	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pathlib"
)

// Scanner discovers runnable units under one monorepo root. Directory
// and entry-file names default to the repo conventions; the command
// layer overrides them from settings.
type Scanner struct {
	Root         string
	Applications string
	Scripts      string
	Entry        string
	Glob         string
}

func NewScanner(root string) *Scanner {
	return &Scanner{
		Root:         common.ExpandPath(root),
		Applications: "apps",
		Scripts:      "scripts",
		Entry:        "main.py",
		Glob:         "*.py",
	}
}

// Scan enumerates application directories and standalone scripts,
// analyzes them in parallel and returns descriptors sorted by
// (category, name). One broken candidate never aborts the scan; it is
// logged and skipped.
func (it *Scanner) Scan() ([]Descriptor, error) {
	defer common.Stopwatch("scan of %q took", it.Root).Debug()

	if !doublestar.ValidatePattern(it.Glob) {
		return nil, fmt.Errorf("invalid script pattern %q", it.Glob)
	}

	applications, err := it.applicationCandidates()
	if err != nil {
		return nil, err
	}
	scripts, err := it.scriptCandidates()
	if err != nil {
		return nil, err
	}

	// Indexed slots keep the outcome deterministic regardless of
	// worker scheduling.
	slots := make([]*Descriptor, len(applications)+len(scripts))
	workers := anywork.NewGroup(0)
	defer workers.Close()
	for at, directory := range applications {
		workers.Backlog(func() error {
			descriptor, failure := it.analyzeApplication(directory)
			if failure != nil {
				common.Error("discovery", failure)
				return nil
			}
			slots[at] = descriptor
			return nil
		})
	}
	for at, script := range scripts {
		slot := len(applications) + at
		workers.Backlog(func() error {
			descriptor, failure := it.analyzeScript(script)
			if failure != nil {
				common.Error("discovery", failure)
				return nil
			}
			slots[slot] = descriptor
			return nil
		})
	}
	if err := workers.Sync(); err != nil {
		common.Error("discovery", err)
	}

	found := make([]Descriptor, 0, len(slots))
	taken := make(map[string]bool, len(slots))
	for _, descriptor := range slots {
		if descriptor == nil {
			continue
		}
		if taken[descriptor.Name] {
			common.Log("Warning: duplicate unit name %q from %q ignored", descriptor.Name, descriptor.Path)
			continue
		}
		taken[descriptor.Name] = true
		found = append(found, *descriptor)
	}

	sort.SliceStable(found, func(left, right int) bool {
		if found[left].Category != found[right].Category {
			return found[left].Category < found[right].Category
		}
		return found[left].Name < found[right].Name
	})
	return found, nil
}

// applicationCandidates lists apps/ subdirectories that carry the
// entry file. Directories without one are silently excluded.
func (it *Scanner) applicationCandidates() ([]string, error) {
	home := filepath.Join(it.Root, it.Applications)
	entries, err := os.ReadDir(home)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not list %q: %w", home, err)
	}
	candidates := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), "__") || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		directory := filepath.Join(home, entry.Name())
		if !pathlib.IsFile(filepath.Join(directory, it.Entry)) {
			continue
		}
		candidates = append(candidates, directory)
	}
	return candidates, nil
}

func (it *Scanner) scriptCandidates() ([]string, error) {
	home := filepath.Join(it.Root, it.Scripts)
	entries, err := os.ReadDir(home)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not list %q: %w", home, err)
	}
	candidates := []string{}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == "__init__.py" {
			continue
		}
		if matched, _ := doublestar.Match(it.Glob, entry.Name()); !matched {
			continue
		}
		candidates = append(candidates, filepath.Join(home, entry.Name()))
	}
	return candidates, nil
}

func (it *Scanner) analyzeApplication(directory string) (*Descriptor, error) {
	entry := filepath.Join(directory, it.Entry)
	content, err := os.ReadFile(entry)
	if err != nil {
		return nil, fmt.Errorf("could not analyze %q: %w", directory, err)
	}
	manifest, err := LoadManifest(directory)
	if err != nil {
		return nil, err
	}

	text := string(content)
	lowered := strings.ToLower(text)
	webAssets := pathlib.Exists(filepath.Join(directory, "templates")) ||
		pathlib.Exists(filepath.Join(directory, "static"))

	category := Classify(text, webAssets)
	if manifest != nil && manifest.Category != "" {
		category = Category(manifest.Category)
	}

	description := Describe(text)
	if manifest != nil && manifest.Description != "" {
		description = manifest.Description
	}

	command := it.applicationCommand(directory, category, lowered)
	if manifest != nil && manifest.Command != "" {
		command = manifest.Command
	}

	port := 0
	if category == CategoryWeb {
		port = ExtractPort(text)
		if manifest != nil && manifest.Port > 0 {
			port = manifest.Port
		}
	}

	name := filepath.Base(directory)
	if manifest != nil && manifest.Name != "" {
		name = manifest.Name
	}

	return &Descriptor{
		Name:        name,
		Path:        directory,
		Category:    category,
		Entry:       entry,
		Description: description,
		Command:     command,
		Port:        port,
		Fingerprint: Fingerprint(content),
	}, nil
}

func (it *Scanner) analyzeScript(script string) (*Descriptor, error) {
	content, err := os.ReadFile(script)
	if err != nil {
		return nil, fmt.Errorf("could not analyze %q: %w", script, err)
	}
	name := strings.TrimSuffix(filepath.Base(script), filepath.Ext(script))
	return &Descriptor{
		Name:        name,
		Path:        filepath.Dir(script),
		Category:    CategoryScript,
		Entry:       script,
		Description: Describe(string(content)),
		Command:     it.scriptCommand(script),
		Fingerprint: Fingerprint(content),
	}, nil
}
