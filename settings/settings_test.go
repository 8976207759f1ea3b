package settings_test

import (
	"testing"
	"time"

	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/settings"
)

func TestThatDefaultValuesAreVisible(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	t.Setenv("FLIGHTDECK_HOME", t.TempDir())

	sut, err := settings.Reload()
	must_be.Nil(err)
	wont_be.Nil(sut)
	wont_be.Nil(settings.Global)

	must_be.Equal("apps", sut.ApplicationsDirectory())
	must_be.Equal("scripts", sut.ScriptsDirectory())
	must_be.Equal("main.py", sut.EntryFile())
	must_be.Equal("*.py", sut.ScriptGlob())
	must_be.Equal(100*time.Millisecond, sut.PollInterval())
	must_be.Equal(5*time.Second, sut.StopTimeout())
	must_be.True(sut.WatchEnabled())
	must_be.Equal(1000, sut.JournalLimit())
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	t.Setenv("FLIGHTDECK_HOME", t.TempDir())
	t.Setenv("FLIGHTDECK_DISCOVERY_APPLICATIONS", "services")
	t.Setenv("FLIGHTDECK_SUPERVISOR_TIMEOUT", "2s")
	t.Setenv("FLIGHTDECK_SHELL_WATCH", "false")

	sut, err := settings.Reload()
	must_be.Nil(err)
	must_be.Equal("services", sut.ApplicationsDirectory())
	must_be.Equal(2*time.Second, sut.StopTimeout())
	must_be.Equal(false, sut.WatchEnabled())

	// nonsense poll intervals fall back to the built-in default
	t.Setenv("FLIGHTDECK_SHELL_POLL", "1ms")
	sut, err = settings.Reload()
	must_be.Nil(err)
	must_be.Equal(100*time.Millisecond, sut.PollInterval())
}
