package discovery

import (
	"fmt"
	"path/filepath"
	"strings"
)

// applicationCommand synthesizes the run command for an application
// directory. Web apps carrying a fastapi marker get a live-reloading
// uvicorn invocation; other framework apps run as modules; plain
// script-grade apps run their entry file directly.
func (it *Scanner) applicationCommand(directory string, category Category, loweredText string) string {
	relative, err := filepath.Rel(it.Root, directory)
	if err != nil {
		relative = directory
	}
	slashed := filepath.ToSlash(relative)
	dotted := strings.ReplaceAll(slashed, "/", ".")
	module := strings.TrimSuffix(it.Entry, ".py")

	switch category {
	case CategoryWeb:
		if strings.Contains(loweredText, "fastapi") {
			return fmt.Sprintf("uv run uvicorn %s.%s:app --reload", dotted, module)
		}
		return fmt.Sprintf("uv run python -m %s.%s", dotted, module)
	case CategoryCli, CategoryTui, CategoryGui:
		return fmt.Sprintf("uv run python -m %s.%s", dotted, module)
	default:
		return fmt.Sprintf("uv run python %s/%s", slashed, it.Entry)
	}
}

// scriptCommand runs a standalone script by its path relative to the
// monorepo root.
func (it *Scanner) scriptCommand(script string) string {
	relative, err := filepath.Rel(it.Root, script)
	if err != nil {
		relative = script
	}
	return fmt.Sprintf("uv run python %s", filepath.ToSlash(relative))
}
