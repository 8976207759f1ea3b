package wizard

import (
	"strings"
	"testing"

	"github.com/flightdeck-io/flightdeck/discovery"
)

func TestEveryCategoryHasExactlyOneTemplate(t *testing.T) {
	templates := KnownTemplates()
	if len(templates) != 5 {
		t.Fatalf("Expected 5 templates, got %d", len(templates))
	}
	seen := make(map[discovery.Category]bool)
	for _, template := range templates {
		if seen[template.Category] {
			t.Errorf("Duplicate template for category %q", template.Category)
		}
		seen[template.Category] = true
		if template.Description == "" {
			t.Errorf("Template %q has no description", template.Category)
		}
	}
}

func TestTemplatesClassifyBackIntoTheirOwnCategory(t *testing.T) {
	// The generated entry files must round-trip through discovery:
	// a freshly created web app has to show up as web on the deck.
	for _, template := range KnownTemplates() {
		body := template.Render("demo-app")
		got := discovery.Classify(body, false)
		if got != template.Category {
			t.Errorf("Template %q classifies as %q", template.Category, got)
		}
	}
}

func TestWebTemplateAdvertisesItsPort(t *testing.T) {
	template, ok := TemplateFor("web")
	if !ok {
		t.Fatal("no web template")
	}
	body := template.Render("site")
	if port := discovery.ExtractPort(body); port != 8000 {
		t.Errorf("Expected port 8000 from web template, got %d", port)
	}
}

func TestRenderEmbedsTheName(t *testing.T) {
	for _, template := range KnownTemplates() {
		body := template.Render("orbit")
		if !strings.Contains(body, "orbit") {
			t.Errorf("Template %q does not mention the unit name", template.Category)
		}
		if strings.Contains(body, "%s") {
			t.Errorf("Template %q left an unfilled placeholder", template.Category)
		}
	}
}

func TestTemplateForUnknownCategory(t *testing.T) {
	if _, ok := TemplateFor("mainframe"); ok {
		t.Error("Expected no template for unknown category")
	}
}

func TestClassNameFromUnitName(t *testing.T) {
	cases := map[string]string{
		"data-tool":  "DataTool",
		"simple":     "Simple",
		"two_words":  "TwoWords",
		"-":          "Application",
		"mixed-up_x": "MixedUpX",
	}
	for input, expected := range cases {
		if got := className(input); got != expected {
			t.Errorf("className(%q) == %q, expected %q", input, got, expected)
		}
	}
}
