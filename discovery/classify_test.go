package discovery_test

import (
	"testing"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/hamlet"
)

func TestClassificationOrderIsMostSpecificFirst(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(discovery.CategoryTui, discovery.Classify("from textual.app import App\nimport typer", false))
	must.Equal(discovery.CategoryTui, discovery.Classify("import textual\nfrom nicegui import ui", false))
	must.Equal(discovery.CategoryGui, discovery.Classify("from nicegui import ui\nimport typer", false))
	must.Equal(discovery.CategoryCli, discovery.Classify("import typer\nfrom fastapi import FastAPI", false))
	must.Equal(discovery.CategoryWeb, discovery.Classify("from fastapi import FastAPI", false))
}

func TestClassificationIsCaseInsensitive(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(discovery.CategoryWeb, discovery.Classify("from FastAPI import FastAPI", false))
	must.Equal(discovery.CategoryGui, discovery.Classify("import Tkinter", false))
	must.Equal(discovery.CategoryCli, discovery.Classify("parser = argparse.ArgumentParser()", false))
}

func TestWebAssetsAloneMakeAWebApp(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(discovery.CategoryWeb, discovery.Classify("print('hello')", true))
	must.Equal(discovery.CategoryScript, discovery.Classify("print('hello')", false))
}

func TestMarkersOutrankWebAssets(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(discovery.CategoryCli, discovery.Classify("import typer", true))
	must.Equal(discovery.CategoryTui, discovery.Classify("from textual.app import App", true))
}

func TestValidCategoryKnowsAllFiveAndNothingElse(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	for _, name := range []string{"web", "cli", "tui", "gui", "script"} {
		must.True(discovery.ValidCategory(name))
	}
	wont.True(discovery.ValidCategory("desktop"))
	wont.True(discovery.ValidCategory(""))
}
