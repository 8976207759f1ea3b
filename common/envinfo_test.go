package common_test

import (
	"testing"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/hamlet"
)

func TestConfidentialNamesAreDetected(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	must_be.True(common.Confidential("MY_SECRET"))
	must_be.True(common.Confidential("api_token"))
	must_be.True(common.Confidential("DbPassword"))
	must_be.True(common.Confidential("SSH_KEY_FILE"))
	wont_be.True(common.Confidential("PATH"))
	wont_be.True(common.Confidential("HOME"))
}

func TestEnvironmentReportFiltersSecrets(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	t.Setenv("FLIGHTDECK_UNITTEST_PASSWORD", "hush")
	t.Setenv("FLIGHTDECK_UNITTEST_PLAIN", "visible")

	sut := common.EnvironmentInfo()
	wont_be.Nil(sut)
	must_be.Equal("flightdeck", sut.Product)
	must_be.True(sut.Cpus > 0)

	seen := map[string]bool{}
	for _, name := range sut.VariableNames {
		seen[name] = true
	}
	wont_be.True(seen["FLIGHTDECK_UNITTEST_PASSWORD"])
	must_be.True(seen["FLIGHTDECK_UNITTEST_PLAIN"])
}
