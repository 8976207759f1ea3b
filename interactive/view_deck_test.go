package interactive_test

import (
	"testing"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/interactive"
)

func TestEveryCategoryHasAnIcon(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	categories := []discovery.Category{
		discovery.CategoryWeb,
		discovery.CategoryCli,
		discovery.CategoryTui,
		discovery.CategoryGui,
		discovery.CategoryScript,
	}
	seen := make(map[string]bool)
	for _, category := range categories {
		icon := interactive.CategoryIcon(category)
		wont.Equal("", icon)
		seen[icon] = true
	}
	must.Equal(len(categories), len(seen))
}

func TestUnitRowShowsPortAndRunningMarker(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	unit := discovery.Descriptor{
		Name:        "dashboard",
		Category:    discovery.CategoryWeb,
		Description: "Monorepo dashboard",
		Command:     "uv run uvicorn apps.dashboard.main:app --reload",
		Port:        8000,
	}

	idle := interactive.FormatUnitRow(unit, false)
	must.Contain("dashboard", idle)
	must.Contain(":8000", idle)
	must.Contain("web", idle)
	wont.Contain("▶", idle)

	busy := interactive.FormatUnitRow(unit, true)
	must.Contain("▶", busy)
}

func TestLongFieldsAreShortenedInRows(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	unit := discovery.Descriptor{
		Name:        "a-unit-name-that-goes-on-and-on-forever",
		Category:    discovery.CategoryScript,
		Description: "a description that is definitely longer than the column it must fit inside of",
	}
	row := interactive.FormatUnitRow(unit, false)
	must.Contain("...", row)
}
