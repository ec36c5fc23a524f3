// Package rotor provides the rotor component implementation for the
// Enigma machine. A rotor performs a fixed substitution permutation and
// steps during encryption, tracking ring offset, current rotation, and
// the original rotation it was built with.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package rotor

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/alphabet"
)

// Size is the alphabet size every rotor operates over.
const Size = alphabet.Size

// Rotor is one wheel: wiring, ring offset, rotation, and the rotation it
// was most recently set to permanently (used by Reset).
type Rotor struct {
	id               string
	forwardMap       [Size]int
	backwardMap      [Size]int
	turnover         int
	ringOffset       int
	rotation         int
	originalRotation int
}

// New builds a rotor from a 26-letter forward wiring string (the output
// letter for input letter 'a'+i at position i) and a single turnover
// letter. Ring offset and rotation both start at zero.
func New(id string, wiring string, turnover rune) (*Rotor, error) {
	runes := []rune(wiring)
	if len(runes) != Size {
		return nil, fmt.Errorf("wiring length %d must equal alphabet size %d", len(runes), Size)
	}

	var forward, backward [Size]int
	var used [Size]bool

	for i, r := range runes {
		out, err := alphabet.ToIndex(foldLower(r))
		if err != nil {
			return nil, fmt.Errorf("invalid character in wiring at position %d: %v", i, err)
		}
		if used[out] {
			return nil, fmt.Errorf("duplicate output character in wiring: %c", r)
		}
		forward[i] = out
		backward[out] = i
		used[out] = true
	}

	turnoverIdx, err := alphabet.ToIndex(foldLower(turnover))
	if err != nil {
		return nil, fmt.Errorf("invalid turnover letter: %v", err)
	}

	return &Rotor{
		id:          id,
		forwardMap:  forward,
		backwardMap: backward,
		turnover:    turnoverIdx,
	}, nil
}

func foldLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// ID returns the rotor's historical name (e.g. "I", "II").
func (r *Rotor) ID() string {
	return r.id
}

// Encode performs the forward (forwards=true) or backward (forwards=false)
// substitution through the rotor at its current ring offset and rotation,
// per spec §4.1:
//
//	v = (c - ring + rotation + 26) mod 26
//	result = forwards ? π(v) : π⁻¹(v)
//	return (result + ring - rotation + 26) mod 26
func (r *Rotor) Encode(c int, forwards bool) int {
	v := mod26(c - r.ringOffset + r.rotation)

	var out int
	if forwards {
		out = r.forwardMap[v]
	} else {
		out = r.backwardMap[v]
	}

	return mod26(out + r.ringOffset - r.rotation)
}

func mod26(n int) int {
	n %= Size
	if n < 0 {
		n += Size
	}
	return n
}

// Rotate advances the rotor's current rotation by one, wrapping mod 26.
func (r *Rotor) Rotate() {
	r.rotation = mod26(r.rotation + 1)
}

// IsAtNotch reports whether the rotor's current rotation is its turnover
// letter, i.e. whether it will catch the next wheel's prawl.
func (r *Rotor) IsAtNotch() bool {
	return r.rotation == r.turnover
}

// Rotation returns the current rotation in [0,25].
func (r *Rotor) Rotation() int {
	return r.rotation
}

// RingOffset returns the current ring setting in [0,25].
func (r *Rotor) RingOffset() int {
	return r.ringOffset
}

// SetRingOffset sets the ring setting.
func (r *Rotor) SetRingOffset(ring int) {
	r.ringOffset = mod26(ring)
}

// SetRotationPermanent sets both the current rotation and the rotation
// Reset will later restore (the starting position for a message).
func (r *Rotor) SetRotationPermanent(rotation int) {
	r.rotation = mod26(rotation)
	r.originalRotation = r.rotation
}

// Reset restores the rotor's current rotation to its original rotation.
func (r *Rotor) Reset() {
	r.rotation = r.originalRotation
}

// Copy yields a rotor with the same wiring and turnover but ring offset
// and rotation both zeroed, as used when building a BombeEnigma cache
// (spec §4.5): the cache has no ring setting and no plugboard, and the
// cache construction loop drives rotation explicitly for every axis
// value rather than through this rotor's own stepping state.
func (r *Rotor) Copy() *Rotor {
	clone := *r
	clone.ringOffset = 0
	clone.rotation = 0
	clone.originalRotation = 0
	return &clone
}
