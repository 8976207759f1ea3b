package discovery_test

import (
	"testing"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/hamlet"
)

func TestSingleLineDocstringIsTheDescription(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	text := "\"\"\"Inventory browser.\"\"\"\nimport typer\n"
	must.Equal("Inventory browser.", discovery.Describe(text))
}

func TestMultilineDocstringCollapsesToOneLine(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	text := "\"\"\"\nBrowse the inventory\nfrom your terminal.\n\"\"\"\nimport typer\n"
	must.Equal("Browse the inventory from your terminal.", discovery.Describe(text))
}

func TestFirstCommentServesWhenDocstringIsAbsent(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	text := "import sys\n# Nightly cleanup job.\nprint('run')\n"
	must.Equal("Nightly cleanup job.", discovery.Describe(text))
}

func TestDescriptionFallsBackForBareCode(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("Python application", discovery.Describe("print('hello')\n"))
	must.Equal("Python application", discovery.Describe(""))
}

func TestTextSharingDocstringDelimiterLinesIsDropped(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	text := "\"\"\"Opening words\nonly this survives\nclosing words\"\"\"\nprint('x')\n"
	must.Equal("only this survives", discovery.Describe(text))
}
