package discovery_test

import (
	"testing"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/hamlet"
)

func TestPortAssignmentIsDetected(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(8000, discovery.ExtractPort("uvicorn.run(app, host='0.0.0.0', port=8000)"))
	must.Equal(5000, discovery.ExtractPort("app.run(port=5000, debug=True)"))
	must.Equal(9090, discovery.ExtractPort("PORT = 9090"))
}

func TestCommandLinePortFlagIsDetected(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(8080, discovery.ExtractPort("# run with: uvicorn main:app --port 8080"))
}

func TestNoPortYieldsZero(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(0, discovery.ExtractPort("print('no network here')"))
	must.Equal(0, discovery.ExtractPort(""))
}

func TestFirstPatternInOrderDecides(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	text := "port=3000\napp.run(port=4000)"
	must.Equal(3000, discovery.ExtractPort(text))
}

func TestFingerprintIsStableAndContentSensitive(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	first := discovery.Fingerprint([]byte("import typer"))
	again := discovery.Fingerprint([]byte("import typer"))
	other := discovery.Fingerprint([]byte("import typer "))

	must.Equal(first, again)
	wont.Equal(first, other)
	must.Equal(16, len(first))
}

func TestRescanSpotsUnitsWhoseCodeMoved(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	before := []discovery.Descriptor{
		{Name: "api", Fingerprint: discovery.Fingerprint([]byte("v1"))},
		{Name: "rover", Fingerprint: discovery.Fingerprint([]byte("steady"))},
	}
	after := []discovery.Descriptor{
		{Name: "api", Fingerprint: discovery.Fingerprint([]byte("v2"))},
		{Name: "rover", Fingerprint: discovery.Fingerprint([]byte("steady"))},
		{Name: "fresh", Fingerprint: discovery.Fingerprint([]byte("new"))},
	}

	changed := discovery.Changed(before, after)
	must.True(changed["api"])
	wont.True(changed["rover"])
	wont.True(changed["fresh"])
	must.Equal(1, len(changed))
}
