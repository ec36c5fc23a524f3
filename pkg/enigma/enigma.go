package enigma

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/alphabet"
	"github.com/forcedentropy/enigma/internal/plugboard"
	"github.com/forcedentropy/enigma/internal/reflector"
	"github.com/forcedentropy/enigma/internal/rotor"
)

// Enigma composes three rotors, a reflector, and a plugboard (spec §3
// Enigma). Lifetime: built by New with Options; Encode steps the rotors
// and restores their starting rotations at the end of each message.
// There are no setters: a different configuration takes a new machine.
type Enigma struct {
	left, middle, right *rotor.Rotor
	reflector           *reflector.Reflector
	plugboard           *plugboard.Plugboard
}

// Option configures an Enigma under construction.
type Option func(*Enigma) error

// New builds an Enigma machine from the given options. A plugboard
// option is not required: an Enigma with no stecker pairs is valid.
func New(opts ...Option) (*Enigma, error) {
	e := &Enigma{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %v", err)
		}
	}

	if e.left == nil || e.middle == nil || e.right == nil {
		return nil, fmt.Errorf("rotors must be configured (left, middle, right)")
	}
	if e.reflector == nil {
		return nil, fmt.Errorf("reflector must be configured")
	}
	if e.plugboard == nil {
		e.plugboard = plugboard.New()
	}

	return e, nil
}

// WithRotors selects the three wheels, left to right.
func WithRotors(left, middle, right RotorName) Option {
	return func(e *Enigma) error {
		l, err := buildRotor(left)
		if err != nil {
			return err
		}
		m, err := buildRotor(middle)
		if err != nil {
			return err
		}
		r, err := buildRotor(right)
		if err != nil {
			return err
		}
		e.left, e.middle, e.right = l, m, r
		return nil
	}
}

// WithReflector selects the reflector.
func WithReflector(name ReflectorName) Option {
	return func(e *Enigma) error {
		mapping, ok := reflectorWiring[name]
		if !ok {
			return fmt.Errorf("unknown reflector %q", name)
		}
		refl, err := reflector.New(string(name), mapping)
		if err != nil {
			return err
		}
		e.reflector = refl
		return nil
	}
}

// WithRings sets the ring offsets for (left, middle, right), each in [0,25].
func WithRings(left, middle, right int) Option {
	return func(e *Enigma) error {
		if e.left == nil || e.middle == nil || e.right == nil {
			return fmt.Errorf("rotors must be set before rings")
		}
		e.left.SetRingOffset(left)
		e.middle.SetRingOffset(middle)
		e.right.SetRingOffset(right)
		return nil
	}
}

// WithRotations sets the starting (and reset-to) rotations for
// (left, middle, right), each in [0,25].
func WithRotations(left, middle, right int) Option {
	return func(e *Enigma) error {
		if e.left == nil || e.middle == nil || e.right == nil {
			return fmt.Errorf("rotors must be set before rotations")
		}
		e.left.SetRotationPermanent(left)
		e.middle.SetRotationPermanent(middle)
		e.right.SetRotationPermanent(right)
		return nil
	}
}

// WithPlugboard installs stecker pairs parsed from a plugboard spec
// string (spec §4.2).
func WithPlugboard(spec string) Option {
	return func(e *Enigma) error {
		pb, err := plugboard.NewFromString(spec)
		if err != nil {
			return err
		}
		e.plugboard = pb
		return nil
	}
}

func buildRotor(name RotorName) (*rotor.Rotor, error) {
	spec, ok := rotorWiring[name]
	if !ok {
		return nil, fmt.Errorf("unknown rotor %q", name)
	}
	return rotor.New(string(name), spec.wiring, spec.turnover)
}

// Encode lowercases the message, processes it character by character
// (spaces pass through unchanged), then resets all three rotors to
// their starting rotations, and uppercases the result (spec §4.4).
func (e *Enigma) Encode(message string) (string, error) {
	indices, err := alphabet.StringToIndices(message)
	if err != nil {
		return "", fmt.Errorf("invalid character in message: %v", err)
	}

	out := make([]int, len(indices))
	for i, idx := range indices {
		if idx == -1 {
			out[i] = -1
			continue
		}
		out[i] = e.encodeLetter(idx)
	}

	e.left.Reset()
	e.middle.Reset()
	e.right.Reset()

	return alphabet.IndicesToString(out)
}

// encodeLetter steps the rotors, then runs one letter through
// plugboard -> rotors forward -> reflector -> rotors backward ->
// plugboard (spec §4.4).
func (e *Enigma) encodeLetter(c int) int {
	e.step()

	v := e.plugboard.Swap(c)
	v = e.right.Encode(v, true)
	v = e.middle.Encode(v, true)
	v = e.left.Encode(v, true)
	v = e.reflector.Reflect(v)
	v = e.left.Encode(v, false)
	v = e.middle.Encode(v, false)
	v = e.right.Encode(v, false)
	v = e.plugboard.Swap(v)

	return v
}

// step advances the rotors per spec §4.3, including the double-step
// anomaly: the middle rotor steps both when the right rotor is at its
// notch and, independently, when the middle rotor is itself at its
// notch (it self-steps on the next press regardless of the right
// rotor).
func (e *Enigma) step() {
	shouldMiddleRotate := e.right.IsAtNotch() || e.middle.IsAtNotch()
	shouldLeftRotate := e.middle.IsAtNotch()

	e.right.Rotate()
	if shouldMiddleRotate {
		e.middle.Rotate()
	}
	if shouldLeftRotate {
		e.left.Rotate()
	}
}

// Reset restores all three rotors to their starting rotations without
// touching ring settings or wiring.
func (e *Enigma) Reset() {
	e.left.Reset()
	e.middle.Reset()
	e.right.Reset()
}

// Rotors returns the (left, middle, right) wheels in use, for callers
// such as the Bombe cache builder that need to clone their wiring.
func (e *Enigma) Rotors() (left, middle, right *rotor.Rotor) {
	return e.left, e.middle, e.right
}

// Reflector returns the installed reflector.
func (e *Enigma) Reflector() *reflector.Reflector {
	return e.reflector
}

// Plugboard returns the installed plugboard.
func (e *Enigma) Plugboard() *plugboard.Plugboard {
	return e.plugboard
}

// RotationIndicator returns the current (left, middle, right) rotations
// as a three-letter lowercase string, e.g. "aaa" (spec §4.5 indicator
// format, §6).
func (e *Enigma) RotationIndicator() (string, error) {
	l, err := alphabet.ToRune(e.left.Rotation())
	if err != nil {
		return "", err
	}
	m, err := alphabet.ToRune(e.middle.Rotation())
	if err != nil {
		return "", err
	}
	r, err := alphabet.ToRune(e.right.Rotation())
	if err != nil {
		return "", err
	}
	return string([]rune{l, m, r}), nil
}
