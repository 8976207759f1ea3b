package discovery

import (
	"fmt"

	"github.com/dchest/siphash"
)

// Fixed keys so fingerprints stay comparable across runs.
const (
	fingerprintKeyLow  = 0x464c49474854 // FLIGHT
	fingerprintKeyHigh = 0x4445434b     // DECK
)

// Fingerprint condenses entry-file content into a short stable token,
// cheap enough to compute on every scan. The shell uses it to spot
// units whose code changed between refreshes.
func Fingerprint(content []byte) string {
	return fmt.Sprintf("%016x", siphash.Hash(fingerprintKeyLow, fingerprintKeyHigh, content))
}

// Changed compares two scans and names the units whose fingerprint
// moved. Units first seen in the current scan are not changed, they
// are new.
func Changed(previous, current []Descriptor) map[string]bool {
	known := make(map[string]string, len(previous))
	for _, unit := range previous {
		known[unit.Name] = unit.Fingerprint
	}
	changed := make(map[string]bool)
	for _, unit := range current {
		before, seen := known[unit.Name]
		if seen && before != unit.Fingerprint {
			changed[unit.Name] = true
		}
	}
	return changed
}
