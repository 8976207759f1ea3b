package logbuf_test

import (
	"fmt"
	"testing"

	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/logbuf"
)

func TestRingStaysBounded(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := logbuf.NewLogBuffer(10)
	for at := 0; at < 25; at++ {
		sut.Add(logbuf.LogInfo, "", fmt.Sprintf("line %d", at))
	}
	must_be.Equal(10, sut.Len())

	recent := sut.Recent(3)
	must_be.Equal(3, len(recent))
	must_be.Equal("line 24", recent[2].Message)
	must_be.Equal("line 22", recent[0].Message)
}

func TestLineLevelDetection(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := logbuf.NewLogBuffer(50)
	sut.AddLine("INFO: application startup complete")
	sut.AddLine("something failed badly")
	sut.AddLine("Warning: port already bound")
	sut.AddLine("Traceback (most recent call last):")
	sut.AddLine("[D] resolved entry file")
	sut.AddLine("   ")

	all := sut.All()
	must_be.Equal(5, len(all))
	must_be.Equal(logbuf.LogInfo, all[0].Level)
	must_be.Equal(logbuf.LogError, all[1].Level)
	must_be.Equal(logbuf.LogWarn, all[2].Level)
	must_be.Equal(logbuf.LogError, all[3].Level)
	must_be.Equal(logbuf.LogDebug, all[4].Level)

	stats := sut.Stats()
	must_be.Equal(5, stats.Total)
	must_be.Equal(2, stats.Errors)
	must_be.Equal(1, stats.Warns)
}

func TestSourceDetection(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := logbuf.NewLogBuffer(10)
	sut.AddLine("Uvicorn running on http://127.0.0.1:8000")
	sut.AddLine("uv: resolved 12 packages")

	all := sut.All()
	must_be.Equal("uvicorn", all[0].Source)
	must_be.Equal("uv", all[1].Source)
	must_be.Equal("resolved 12 packages", all[1].Message)
}

func TestChangeCallbackFires(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := logbuf.NewLogBuffer(10)
	fired := 0
	sut.SetOnChange(func() { fired++ })
	sut.Add(logbuf.LogInfo, "", "one")
	sut.Add(logbuf.LogInfo, "", "two")
	must_be.Equal(2, fired)

	sut.Clear()
	must_be.Equal(0, sut.Len())
}
