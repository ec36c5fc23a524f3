package bombe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/pkg/enigma"
)

// TestFarmCoversSingleOrderCrack matches spec §8 scenario 6: running the
// full 60-order farm sweep against the same menu used in
// TestBombeKnownCrack must surface at least the stop the single known
// rotor order produces; the farm result set is a superset, not a
// replacement, of a single order's sweep.
func TestFarmCoversSingleOrderCrack(t *testing.T) {
	e, err := enigma.New(
		enigma.WithRotors(enigma.RotorI, enigma.RotorII, enigma.RotorIII),
		enigma.WithReflector(enigma.ReflectorB),
		enigma.WithRings(0, 0, 0),
		enigma.WithRotations(0, 0, 0),
		enigma.WithPlugboard("ar gk ox"),
	)
	require.NoError(t, err)

	ciphertext, err := e.Encode("ATTACKATDAWN")
	require.NoError(t, err)

	menu, err := BuildMenu(strings.ToLower(ciphertext), "attackatdawn")
	require.NoError(t, err)

	stops, err := Farm(menu, true)
	require.NoError(t, err)

	wantConfiguration := "B I II III"
	found := false
	for _, s := range stops {
		if s.Indicator == "aaa" && s.Configuration == wantConfiguration {
			found = true
			break
		}
	}
	require.Truef(t, found, "expected a stop at indicator %q for configuration %q among %d farm stops, none matched",
		"aaa", wantConfiguration, len(stops))
}
