// Package enigma provides the main three-rotor Enigma machine
// implementation: scrambler stepping (including the double-step
// anomaly) and whole-message encoding (spec §4.3, §4.4).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

// RotorName identifies one of the five historical rotor wheels this
// machine supports (spec Non-goals: no wheels beyond I-V).
type RotorName string

// Historical rotor identifiers.
const (
	RotorI   RotorName = "I"
	RotorII  RotorName = "II"
	RotorIII RotorName = "III"
	RotorIV  RotorName = "IV"
	RotorV   RotorName = "V"
)

// ReflectorName identifies one of the two historical reflectors this
// machine supports (spec Non-goals: no reflectors beyond B and C).
type ReflectorName string

// Historical reflector identifiers.
const (
	ReflectorB ReflectorName = "B"
	ReflectorC ReflectorName = "C"
)

// rotorWiring gives the forward wiring string and turnover letter for
// each historical rotor (spec §3 table).
var rotorWiring = map[RotorName]struct {
	wiring   string
	turnover rune
}{
	RotorI:   {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'q'},
	RotorII:  {"AJDKSIRUXBLHWTMCQGZNPYFVOE", 'e'},
	RotorIII: {"BDFHJLCPRTXVZNYEIWGAKMUSQO", 'v'},
	RotorIV:  {"ESOVPZJAYQUIRHXLNFTGKDCMWB", 'j'},
	RotorV:   {"VZBRGITYUPSDNHLXAWMJQOFECK", 'z'},
}

// reflectorWiring gives the mapping string for each historical reflector.
var reflectorWiring = map[ReflectorName]string{
	ReflectorB: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	ReflectorC: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// AllRotorNames returns the five historical rotors in canonical order,
// used by the search driver to enumerate 5*4*3 orderings (spec §4.11).
func AllRotorNames() []RotorName {
	return []RotorName{RotorI, RotorII, RotorIII, RotorIV, RotorV}
}

// RotorOrderings returns every ordered selection of three distinct
// rotors from AllRotorNames, left-to-right, 60 combinations total.
func RotorOrderings() [][3]RotorName {
	names := AllRotorNames()
	var orderings [][3]RotorName
	for _, l := range names {
		for _, m := range names {
			if m == l {
				continue
			}
			for _, r := range names {
				if r == l || r == m {
					continue
				}
				orderings = append(orderings, [3]RotorName{l, m, r})
			}
		}
	}
	return orderings
}
