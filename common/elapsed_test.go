package common_test

import (
	"testing"
	"time"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/hamlet"
)

func TestCanUseStopwatch(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := common.Stopwatch("hello")
	wont_be.Nil(sut)
	limit := common.Duration(100 * time.Millisecond)
	must_be.True(sut.Elapsed() < limit)
	must_be.True(sut.Elapsed() > 0)
}
