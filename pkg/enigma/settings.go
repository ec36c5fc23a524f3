package enigma

import (
	"encoding/json"
	"fmt"
)

// Settings is the serializable configuration and starting state of an
// Enigma machine: rotor order, reflector, ring settings, starting
// rotations, and plugboard pairs. Mirrors the teacher library's
// EnigmaSettings shape, narrowed to the fixed historical domain.
type Settings struct {
	Rotors    [3]RotorName  `json:"rotors"`
	Reflector ReflectorName `json:"reflector"`
	Rings     [3]int        `json:"rings"`
	Rotations [3]int        `json:"rotations"`
	Plugboard string        `json:"plugboard"`
}

// NewFromSettings builds an Enigma machine from a Settings value.
func NewFromSettings(s Settings) (*Enigma, error) {
	opts := []Option{
		WithRotors(s.Rotors[0], s.Rotors[1], s.Rotors[2]),
		WithReflector(s.Reflector),
		WithRings(s.Rings[0], s.Rings[1], s.Rings[2]),
		WithRotations(s.Rotations[0], s.Rotations[1], s.Rotations[2]),
	}
	if s.Plugboard != "" {
		opts = append(opts, WithPlugboard(s.Plugboard))
	}
	return New(opts...)
}

// NewFromJSON builds an Enigma machine from a JSON-encoded Settings
// document.
func NewFromJSON(data string) (*Enigma, error) {
	var s Settings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %v", err)
	}
	return NewFromSettings(s)
}

// Settings captures the machine's rotor/reflector identities, its
// current ring settings and starting (original) rotations, and its
// plugboard pairs, suitable for round-tripping through JSON.
func (e *Enigma) Settings() (Settings, error) {
	left, middle, right := e.Rotors()

	pairs, err := e.plugboard.Pairs()
	if err != nil {
		return Settings{}, err
	}
	groups := make([]string, len(pairs))
	for i, p := range pairs {
		groups[i] = fmt.Sprintf("%c%c", p[0], p[1])
	}
	plugboardSpec := ""
	for i, g := range groups {
		if i > 0 {
			plugboardSpec += " "
		}
		plugboardSpec += g
	}

	return Settings{
		Rotors:    [3]RotorName{RotorName(left.ID()), RotorName(middle.ID()), RotorName(right.ID())},
		Reflector: ReflectorName(e.reflector.ID()),
		Rings:     [3]int{left.RingOffset(), middle.RingOffset(), right.RingOffset()},
		Rotations: [3]int{left.Rotation(), middle.Rotation(), right.Rotation()},
		Plugboard: plugboardSpec,
	}, nil
}
