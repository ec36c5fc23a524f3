package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forcedentropy/enigma/pkg/enigma"
)

// parseRotorNames parses a comma-separated triple of rotor names, e.g.
// "I,II,III".
func parseRotorNames(csv string) ([3]enigma.RotorName, error) {
	var out [3]enigma.RotorName
	parts := strings.Split(csv, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected 3 comma-separated rotor names, got %d in %q", len(parts), csv)
	}
	for i, p := range parts {
		out[i] = enigma.RotorName(strings.ToUpper(strings.TrimSpace(p)))
	}
	return out, nil
}

// parseTriple parses a comma-separated triple of integers in [0,25],
// used for both ring settings and starting rotations.
func parseTriple(csv string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(csv, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected 3 comma-separated integers, got %d in %q", len(parts), csv)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("invalid integer %q: %v", p, err)
		}
		if v < 0 || v > 25 {
			return out, fmt.Errorf("value %d out of range [0,25]", v)
		}
		out[i] = v
	}
	return out, nil
}

func parseReflectorName(s string) (enigma.ReflectorName, error) {
	name := enigma.ReflectorName(strings.ToUpper(strings.TrimSpace(s)))
	if name != enigma.ReflectorB && name != enigma.ReflectorC {
		return "", fmt.Errorf("unknown reflector %q, want B or C", s)
	}
	return name, nil
}

// buildEnigma assembles an Enigma machine from the rotors/reflector/
// rings/rotations/plugboard flags of the encode command.
func buildEnigma(rotorsCSV, reflectorName, ringsCSV, rotationsCSV, plugboardSpec string) (*enigma.Enigma, error) {
	rotors, err := parseRotorNames(rotorsCSV)
	if err != nil {
		return nil, fmt.Errorf("invalid --rotors: %v", err)
	}
	reflector, err := parseReflectorName(reflectorName)
	if err != nil {
		return nil, fmt.Errorf("invalid --reflector: %v", err)
	}
	rings, err := parseTriple(ringsCSV)
	if err != nil {
		return nil, fmt.Errorf("invalid --rings: %v", err)
	}
	rotations, err := parseTriple(rotationsCSV)
	if err != nil {
		return nil, fmt.Errorf("invalid --rotations: %v", err)
	}

	opts := []enigma.Option{
		enigma.WithRotors(rotors[0], rotors[1], rotors[2]),
		enigma.WithReflector(reflector),
		enigma.WithRings(rings[0], rings[1], rings[2]),
		enigma.WithRotations(rotations[0], rotations[1], rotations[2]),
	}
	if strings.TrimSpace(plugboardSpec) != "" {
		opts = append(opts, enigma.WithPlugboard(plugboardSpec))
	}

	return enigma.New(opts...)
}
