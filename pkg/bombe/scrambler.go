package bombe

import (
	"github.com/forcedentropy/enigma/internal/alphabet"
	"github.com/forcedentropy/enigma/internal/reflector"
	"github.com/forcedentropy/enigma/internal/rotor"
)

const size = alphabet.Size

// Scrambler is the precomputed 26^4 rotor-stack output table for one
// fixed rotor order: for every (left, middle, right) starting rotation
// and every input letter, the letter produced with plugboard removed
// and ring settings forced to zero, with no stepping during the single
// letter (spec §3 BombeEnigma scrambler cache, §4.5). Immutable after
// construction.
type Scrambler struct {
	cache  []byte // flat 26*26*26*26 table
	cursor [3]int // (l, m, r) set by SetRotation; the right axis is
	// offset independently per Encode call and never mutates this cursor
}

// NewScrambler clones the given wheels and reflector (via rotor.Copy,
// which forces ring offset and rotation to zero) and populates the
// cache by running the full scrambler substitution for every axis
// combination, with no stepping and no plugboard (spec §4.5).
func NewScrambler(left, middle, right *rotor.Rotor, refl *reflector.Reflector) *Scrambler {
	l := left.Copy()
	m := middle.Copy()
	r := right.Copy()

	cache := make([]byte, size*size*size*size)

	for li := 0; li < size; li++ {
		l.SetRotationPermanent(li)
		for mi := 0; mi < size; mi++ {
			m.SetRotationPermanent(mi)
			for ri := 0; ri < size; ri++ {
				r.SetRotationPermanent(ri)
				base := cacheIndex(li, mi, ri, 0)
				for x := 0; x < size; x++ {
					v := x
					v = r.Encode(v, true)
					v = m.Encode(v, true)
					v = l.Encode(v, true)
					v = refl.Reflect(v)
					v = l.Encode(v, false)
					v = m.Encode(v, false)
					v = r.Encode(v, false)
					cache[base+x] = byte(v)
				}
			}
		}
	}

	return &Scrambler{cache: cache}
}

func cacheIndex(l, m, r, x int) int {
	return ((l*size+m)*size+r)*size + x
}

// SetRotation stores the cursor (l, m, r) the scrambler reads from.
// This is a cursor independent of any rotor's own `rotation` field --
// the cache itself was built by driving rotation directly per axis, and
// nothing in Scrambler keeps a live reference to a stepping rotor
// (spec §9 design note on BombeEnigma.encode).
func (s *Scrambler) SetRotation(l, m, r int) {
	s.cursor = [3]int{mod26(l), mod26(m), mod26(r)}
}

// Encode returns the letter produced by the cached scrambler when the
// right rotor's starting rotation is additionally offset by rightShift
// (spec §4.5): only the right rotor is offset, reflecting the Bombe's
// assumption that menu lengths are short enough that middle and left
// never step while traversing a menu edge.
func (s *Scrambler) Encode(letter, rightShift int) int {
	r := mod26(s.cursor[2] + rightShift)
	return int(s.cache[cacheIndex(s.cursor[0], s.cursor[1], r, letter)])
}

// Indicator returns the cursor as a three-letter lowercase string
// (left, middle, right), spec §4.5 / §6.
func (s *Scrambler) Indicator() (string, error) {
	l, err := alphabet.ToRune(s.cursor[0])
	if err != nil {
		return "", err
	}
	m, err := alphabet.ToRune(s.cursor[1])
	if err != nil {
		return "", err
	}
	r, err := alphabet.ToRune(s.cursor[2])
	if err != nil {
		return "", err
	}
	return string([]rune{l, m, r}), nil
}

func mod26(n int) int {
	n %= size
	if n < 0 {
		n += size
	}
	return n
}
