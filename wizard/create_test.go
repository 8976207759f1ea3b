package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/pretty"
)

func TestCreateApplicationWritesDiscoverableUnit(t *testing.T) {
	root := t.TempDir()

	directory, err := CreateApplication(root, "apps", "main.py", "rover", "tui")
	if err != nil {
		t.Fatalf("Expected creation to succeed, got: %v", err)
	}
	entry := filepath.Join(directory, "main.py")
	if _, err := os.Stat(entry); err != nil {
		t.Fatalf("Expected entry file at %q: %v", entry, err)
	}

	units, err := discovery.NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("Expected 1 discovered unit, got %d", len(units))
	}
	if units[0].Name != "rover" || units[0].Category != discovery.CategoryTui {
		t.Errorf("Unexpected descriptor: %+v", units[0])
	}
}

func TestCreateApplicationRefusesExistingDirectory(t *testing.T) {
	root := t.TempDir()

	if _, err := CreateApplication(root, "apps", "main.py", "twice", "cli"); err != nil {
		t.Fatalf("First creation failed: %v", err)
	}
	if _, err := CreateApplication(root, "apps", "main.py", "twice", "cli"); err == nil {
		t.Error("Expected second creation to fail")
	}
}

func TestCreateApplicationValidatesInput(t *testing.T) {
	root := t.TempDir()

	if _, err := CreateApplication(root, "apps", "main.py", "bad name", "cli"); err == nil {
		t.Error("Expected invalid name to be rejected")
	}
	if _, err := CreateApplication(root, "apps", "main.py", "fine", "mainframe"); err == nil {
		t.Error("Expected unknown category to be rejected")
	}
}

func TestConfirmWithForce(t *testing.T) {
	result, err := Confirm("Test question", true)
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !result {
		t.Error("Expected true when force is set")
	}
}

func TestConfirmNonInteractiveWithoutForce(t *testing.T) {
	originalInteractive := pretty.Interactive
	defer func() { pretty.Interactive = originalInteractive }()
	pretty.Interactive = false

	result, err := Confirm("Test question", false)
	if !errors.Is(err, ErrConfirmationRequired) {
		t.Errorf("Expected ErrConfirmationRequired, got: %v", err)
	}
	if result {
		t.Error("Expected false when non-interactive without force")
	}
}

func TestAskCategoryNonInteractive(t *testing.T) {
	originalInteractive := pretty.Interactive
	defer func() { pretty.Interactive = originalInteractive }()
	pretty.Interactive = false

	if _, err := AskCategory(); err == nil {
		t.Error("Expected error without a terminal")
	}
}
