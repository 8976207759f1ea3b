package wizard

import (
	"fmt"
	"strings"

	"github.com/flightdeck-io/flightdeck/discovery"
)

// Template is one per-category application skeleton. The body is the
// content of the generated entry file; discovery must classify each
// body back into its own category, so the bodies carry the framework
// markers classification keys on.
type Template struct {
	Category    discovery.Category
	Description string
	Body        string
}

const webTemplate = `"""%s web application."""

import uvicorn
from fastapi import FastAPI

app = FastAPI(title="%s")


@app.get("/")
def read_root():
    return {"app": "%s", "status": "ok"}


if __name__ == "__main__":
    uvicorn.run(app, host="127.0.0.1", port=8000)
`

const cliTemplate = `"""%s command-line tool."""

import typer

app = typer.Typer(help="%s")


@app.command()
def hello(name: str = "world") -> None:
    typer.echo(f"Hello, {name}!")


if __name__ == "__main__":
    app()
`

const tuiTemplate = `"""%s terminal application."""

from textual.app import App, ComposeResult
from textual.widgets import Footer, Header, Static


class %s(App):
    def compose(self) -> ComposeResult:
        yield Header()
        yield Static("Hello from %s")
        yield Footer()


if __name__ == "__main__":
    %s().run()
`

const guiTemplate = `"""%s desktop application."""

from nicegui import ui

ui.label("Hello from %s")

ui.run(title="%s", native=True)
`

const scriptTemplate = `"""%s script."""


def main() -> None:
    print("Hello from %s")


if __name__ == "__main__":
    main()
`

// KnownTemplates lists the skeletons in category sort order, one per
// category.
func KnownTemplates() []Template {
	return []Template{
		{discovery.CategoryCli, "Command-line tool (typer)", cliTemplate},
		{discovery.CategoryGui, "Desktop application (nicegui)", guiTemplate},
		{discovery.CategoryScript, "Plain Python script", scriptTemplate},
		{discovery.CategoryTui, "Terminal application (textual)", tuiTemplate},
		{discovery.CategoryWeb, "Web service (fastapi + uvicorn)", webTemplate},
	}
}

// TemplateFor picks the skeleton for one category name.
func TemplateFor(category string) (*Template, bool) {
	for _, template := range KnownTemplates() {
		if string(template.Category) == category {
			return &template, true
		}
	}
	return nil, false
}

// Render fills the skeleton with the application name.
func (it Template) Render(name string) string {
	switch it.Category {
	case discovery.CategoryTui:
		class := className(name)
		return fmt.Sprintf(it.Body, name, class, name, class)
	case discovery.CategoryWeb, discovery.CategoryGui:
		return fmt.Sprintf(it.Body, name, name, name)
	default:
		return fmt.Sprintf(it.Body, name, name)
	}
}

// className turns a unit name into a Python class name: "data-tool"
// becomes "DataTool".
func className(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	result := strings.Builder{}
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(part[1:])
	}
	if result.Len() == 0 {
		return "Application"
	}
	return result.String()
}
