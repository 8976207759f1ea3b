package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/pathlib"
	"github.com/flightdeck-io/flightdeck/pretty"
)

// CreateApplication scaffolds apps/<name>/<entry> under the monorepo
// root from the category's template. The name must be a valid unit
// name, the category one of the five, and the directory must not
// exist yet.
func CreateApplication(root, appsDir, entryFile, name, category string) (string, error) {
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("invalid application name %q: only alphanumerics, underscores and hyphens", name)
	}
	template, ok := TemplateFor(category)
	if !ok {
		return "", fmt.Errorf("unknown category %q, pick one of: %s", category, strings.Join(CategoryNames(), ", "))
	}

	directory := filepath.Join(root, appsDir, name)
	if pathlib.Exists(directory) {
		return "", fmt.Errorf("application %q already exists at %q", name, directory)
	}
	if _, err := pathlib.EnsureDirectory(directory); err != nil {
		return "", err
	}

	entry := filepath.Join(directory, entryFile)
	if err := os.WriteFile(entry, []byte(template.Render(name)), 0o644); err != nil {
		return "", fmt.Errorf("could not write %q: %w", entry, err)
	}
	common.Debug("created %s application %q at %q", category, name, directory)
	return directory, nil
}

// CategoryNames lists the valid category names in template order.
func CategoryNames() []string {
	templates := KnownTemplates()
	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, string(template.Category))
	}
	return names
}

// AskCategory interactively picks a category when the flag was not
// given. Requires a terminal.
func AskCategory() (string, error) {
	if !pretty.Interactive {
		return "", fmt.Errorf("category selection requires a terminal; use the --kind flag instead")
	}
	names := CategoryNames()
	common.Stdout("%sAvailable application kinds:%s\n\n", pretty.White, pretty.Reset)
	for at, template := range KnownTemplates() {
		common.Stdout("  %s%d)%s %s%-8s%s %s%s%s\n",
			pretty.Green, at+1, pretty.Reset,
			pretty.White, template.Category, pretty.Reset,
			pretty.Grey, template.Description, pretty.Reset)
	}
	common.Stdout("\n")
	validator := memberValidation(names, "Pick one of the listed kinds.")
	return ask("Application kind", string(discovery.CategoryScript), validator)
}

// AskName interactively asks for the unit name.
func AskName(fallback string) (string, error) {
	if !pretty.Interactive {
		return "", fmt.Errorf("name selection requires a terminal; pass the name as an argument instead")
	}
	return ask("Application name", fallback, ValidateUnitName())
}
