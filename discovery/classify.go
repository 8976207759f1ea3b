package discovery

import "strings"

type predicate func(text string, webAssets bool) bool

type rule struct {
	category Category
	applies  predicate
}

func markers(needles ...string) predicate {
	return func(text string, _ bool) bool {
		for _, needle := range needles {
			if strings.Contains(text, needle) {
				return true
			}
		}
		return false
	}
}

func assets() predicate {
	return func(_ string, webAssets bool) bool {
		return webAssets
	}
}

// Classification is an ordered policy, most specific first. The first
// matching rule wins; reordering reclassifies files that satisfy more
// than one signature.
var classification = []rule{
	{CategoryTui, markers("from textual", "import textual", "textual.app", "textual.widgets")},
	{CategoryGui, markers("from nicegui", "import nicegui", "nicegui", "tkinter", "pygame", "kivy", "pyside", "pyqt")},
	{CategoryCli, markers("from typer", "import typer", "typer.typer", "@app.command", "click.command", "argparse.argumentparser")},
	{CategoryWeb, markers("fastapi", "from fastapi", "flask", "django", "starlette")},
	{CategoryWeb, assets()},
}

// Classify matches the entry-file text (case-insensitively) and the
// presence of web asset directories against the classification rules.
func Classify(text string, webAssets bool) Category {
	lowered := strings.ToLower(text)
	for _, rule := range classification {
		if rule.applies(lowered, webAssets) {
			return rule.category
		}
	}
	return CategoryScript
}
