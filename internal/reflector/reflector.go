// Package reflector provides the reflector component implementation for
// the Enigma machine. A reflector is a fixed involution over the
// alphabet with no stepping state: ring offset and rotation are always
// zero (spec §3).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package reflector

import (
	"fmt"

	"github.com/forcedentropy/enigma/internal/alphabet"
)

// Size is the alphabet size every reflector operates over.
const Size = alphabet.Size

// Reflector is a fixed reciprocal letter mapping: if A maps to B, B maps
// back to A, and no letter maps to itself.
type Reflector struct {
	id      string
	mapping [Size]int
}

// New builds a reflector from a 26-letter mapping string, validating
// reciprocity and the absence of self-mapping.
func New(id string, mapping string) (*Reflector, error) {
	runes := []rune(mapping)
	if len(runes) != Size {
		return nil, fmt.Errorf("mapping length %d must equal alphabet size %d", len(runes), Size)
	}

	var table [Size]int
	var used [Size]bool

	for i, r := range runes {
		out, err := alphabet.ToIndex(foldLower(r))
		if err != nil {
			return nil, fmt.Errorf("invalid character in mapping at position %d: %v", i, err)
		}
		if out == i {
			letter, _ := alphabet.ToRune(i)
			return nil, fmt.Errorf("character %c cannot map to itself in a reflector", letter)
		}
		if used[out] {
			letter, _ := alphabet.ToRune(out)
			return nil, fmt.Errorf("character %c is used multiple times in mapping", letter)
		}
		table[i] = out
		used[out] = true
	}

	for i := 0; i < Size; i++ {
		if table[table[i]] != i {
			a, _ := alphabet.ToRune(i)
			b, _ := alphabet.ToRune(table[i])
			return nil, fmt.Errorf("non-reciprocal mapping: %c->%c but reverse does not hold", a, b)
		}
	}

	return &Reflector{id: id, mapping: table}, nil
}

func foldLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// ID returns the reflector's historical name ("B" or "C").
func (r *Reflector) ID() string {
	return r.id
}

// Reflect performs the reflection of a letter index.
func (r *Reflector) Reflect(c int) int {
	return r.mapping[c]
}
