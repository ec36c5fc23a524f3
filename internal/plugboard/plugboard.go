// Package plugboard provides the plugboard (Steckerbrett) component
// implementation for the Enigma machine. It handles reciprocal letter
// swapping over a partial subset of the alphabet (spec §3, §4.2).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package plugboard

import (
	"fmt"
	"strings"

	"github.com/forcedentropy/enigma/internal/alphabet"
)

// Size is the alphabet size the plugboard operates over.
const Size = alphabet.Size

// Plugboard is a partial involution S on the alphabet: if S(a)=b then
// S(b)=a; any unpaired letter maps to itself.
type Plugboard struct {
	mapping map[int]int
}

// New creates an empty plugboard.
func New() *Plugboard {
	return &Plugboard{mapping: make(map[int]int)}
}

// NewFromString parses a plugboard from whitespace-separated groups of
// exactly two lowercase letters (spec §4.2), e.g. "ab cd ef".
func NewFromString(spec string) (*Plugboard, error) {
	pb := New()
	for _, group := range strings.Fields(strings.ToLower(spec)) {
		runes := []rune(group)
		if len(runes) != 2 {
			return nil, fmt.Errorf("stecker group %q must be exactly two letters", group)
		}
		a, err := alphabet.ToIndex(runes[0])
		if err != nil {
			return nil, fmt.Errorf("invalid stecker group %q: %v", group, err)
		}
		b, err := alphabet.ToIndex(runes[1])
		if err != nil {
			return nil, fmt.Errorf("invalid stecker group %q: %v", group, err)
		}
		if err := pb.Add(a, b); err != nil {
			return nil, err
		}
	}
	return pb, nil
}

// Add installs the reciprocal pair (a<->b).
func (p *Plugboard) Add(a, b int) error {
	if a == b {
		letter, _ := alphabet.ToRune(a)
		return fmt.Errorf("cannot pair letter %c with itself", letter)
	}
	if _, paired := p.mapping[a]; paired {
		letter, _ := alphabet.ToRune(a)
		return fmt.Errorf("letter %c is already paired", letter)
	}
	if _, paired := p.mapping[b]; paired {
		letter, _ := alphabet.ToRune(b)
		return fmt.Errorf("letter %c is already paired", letter)
	}
	p.mapping[a] = b
	p.mapping[b] = a
	return nil
}

// Swap returns S(c): the plugboard partner of c, or c itself if c is
// unpaired.
func (p *Plugboard) Swap(c int) int {
	if out, ok := p.mapping[c]; ok {
		return out
	}
	return c
}

// Partner returns the current stecker partner of c, if any.
func (p *Plugboard) Partner(c int) (int, bool) {
	partner, ok := p.mapping[c]
	return partner, ok
}

// PairCount returns the number of stecker pairs currently configured.
func (p *Plugboard) PairCount() int {
	return len(p.mapping) / 2
}

// Pairs returns the current pairs as letter pairs, ordered by the
// smaller letter in each pair, suitable for presentation (e.g. "ar gk ox").
func (p *Plugboard) Pairs() ([][2]rune, error) {
	seen := make(map[int]bool)
	var pairs [][2]rune
	for a := 0; a < Size; a++ {
		b, ok := p.mapping[a]
		if !ok || seen[a] || b < a {
			continue
		}
		ra, err := alphabet.ToRune(a)
		if err != nil {
			return nil, err
		}
		rb, err := alphabet.ToRune(b)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]rune{ra, rb})
		seen[a] = true
		seen[b] = true
	}
	return pairs, nil
}

// String renders the plugboard as space-separated two-letter groups.
func (p *Plugboard) String() string {
	pairs, err := p.Pairs()
	if err != nil {
		return ""
	}
	groups := make([]string, len(pairs))
	for i, pair := range pairs {
		groups[i] = strings.ToUpper(string(pair[0]) + string(pair[1]))
	}
	return strings.Join(groups, " ")
}

// Clone returns a deep copy of the plugboard.
func (p *Plugboard) Clone() *Plugboard {
	clone := New()
	for k, v := range p.mapping {
		clone.mapping[k] = v
	}
	return clone
}
