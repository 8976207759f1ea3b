package journal_test

import (
	"testing"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/journal"
)

func TestJournalCanBeCalled(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	t.Setenv(common.HomeVariable, t.TempDir())

	must.Equal("foo bar", journal.Unify("  foo  \t  \r\n   bar  "))

	common.ControllerType = "unittest"

	must.Nil(journal.Post("unittest", "journal-1", "from journal/journal_test.go"))
	events, err := journal.Events()
	must.Nil(err)
	wont.Nil(events)
	must.True(len(events) > 0)
	must.Nil(journal.Post("unittest", "journal-2", "from journal/journal_test.go"))
	second, err := journal.Events()
	must.Nil(err)
	must.True(len(second) > len(events))
}

func TestEventsShareIdentityWhenPosted(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	t.Setenv(common.HomeVariable, t.TempDir())
	common.ControllerType = "unittest"

	identity := journal.NewRunId()
	wont.Equal("", identity)
	must.Nil(journal.PostWithId(identity, "start", "demo", "started"))
	must.Nil(journal.PostWithId(identity, "exit", "demo", "exit code %d", 0))

	events, err := journal.Events()
	must.Nil(err)
	must.Equal(2, len(events))
	must.Equal(identity, events[0].Id)
	must.Equal(identity, events[1].Id)
	must.Equal("start", events[0].Kind)
	must.Equal("exit", events[1].Kind)
	must.Equal("unittest", events[0].Controller)
}

func TestRecentLimitsFromTheTail(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	t.Setenv(common.HomeVariable, t.TempDir())

	for at := 0; at < 5; at++ {
		must.Nil(journal.Post("unittest", "demo", "event %d", at))
	}
	tail, err := journal.Recent(2)
	must.Nil(err)
	must.Equal(2, len(tail))
	must.Equal("event 3", tail[0].Detail)
	must.Equal("event 4", tail[1].Detail)
}
