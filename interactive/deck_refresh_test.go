package interactive

import (
	"testing"
	"time"

	"github.com/flightdeck-io/flightdeck/discovery"
	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/supervisor"
)

func TestDeckMarksUnitsChangedBetweenRefreshes(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	dir := t.TempDir()
	shell := &Shell{
		Scanner: discovery.NewScanner(dir),
		Boss:    supervisor.New(dir, time.Second),
	}
	deck := NewDeckView(shell, NewStyles())

	first := []discovery.Descriptor{
		{Name: "api", Category: discovery.CategoryWeb, Fingerprint: discovery.Fingerprint([]byte("v1"))},
		{Name: "rover", Category: discovery.CategoryTui, Fingerprint: discovery.Fingerprint([]byte("steady"))},
	}
	deck.Update(deckLoadedMsg{units: first})
	wont.True(deck.changed["api"])
	wont.Contain(" *", deck.View())

	second := []discovery.Descriptor{
		{Name: "api", Category: discovery.CategoryWeb, Fingerprint: discovery.Fingerprint([]byte("v2"))},
		{Name: "rover", Category: discovery.CategoryTui, Fingerprint: discovery.Fingerprint([]byte("steady"))},
	}
	deck.Update(deckLoadedMsg{units: second})
	must.True(deck.changed["api"])
	wont.True(deck.changed["rover"])
	must.Contain(" *", deck.View())
}
