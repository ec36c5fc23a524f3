package bombe

import (
	"github.com/forcedentropy/enigma/internal/plugboard"
)

// wirePair is one cell of the wire matrix: a hypothesis that menu letter
// i is stecker-wired to letter j at the test register's rotor offset.
type wirePair struct {
	i, j int
}

// Bombe runs the electromechanical deduction for one fixed rotor order
// and reflector (spec §3 Bombe, §4.7-§4.10). A Bombe is built once per
// rotor order and reused across the full 26^3 rotation sweep.
type Bombe struct {
	menu      *Menu
	scrambler *Scrambler
	wires     [alphabetSize * alphabetSize]bool
	liveWires int
	check     bool

	// testRegisterPair is fixed at 'b' (index 1), per spec §4.7: the
	// test register is hypothesized stecker-paired to 'b' whichever
	// letter the test register is, an arbitrary but conventional choice.
	testRegisterPair int

	// configuration labels every Stop this Bombe produces with the
	// rotor order and reflector it was built for (spec §4.10, §6).
	configuration string
}

// Stop is one accepted Bombe stop: a rotation at which the test register
// hypothesis survived energization (spec §4.8, §6).
type Stop struct {
	Indicator     string
	Plugboard     *plugboard.Plugboard
	Configuration string
}

// NewBombe builds a Bombe for one menu, over one rotor order's
// precomputed scrambler, labeling every stop it reports with
// configuration (e.g. "B I II III").
func NewBombe(menu *Menu, scrambler *Scrambler, configuration string, check bool) *Bombe {
	return &Bombe{
		menu:             menu,
		scrambler:        scrambler,
		testRegisterPair: 1,
		check:            check,
		configuration:    configuration,
	}
}

// resetWires clears the wire matrix and live-wire counter ahead of a
// fresh energization at a new rotation.
func (b *Bombe) resetWires() {
	b.wires = [alphabetSize * alphabetSize]bool{}
	b.liveWires = 0
}

// energize drives the hypothesis that menu letters i and j are
// stecker-paired, propagating the consequence along every menu edge
// until no new wire is forced (spec §4.7). Implemented with an explicit
// LIFO work stack rather than recursion: spec §9 notes that menu depth
// is bounded only by crib length, not a small constant, and sanctions
// rewriting the recursive propagation as an explicit work list, since
// energize is idempotent and the final wire matrix does not depend on
// traversal order.
func (b *Bombe) energize(i, j int) {
	stack := []wirePair{{i, j}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := alphabetSize*p.i + p.j
		if b.wires[idx] {
			continue
		}
		b.wires[idx] = true
		b.wires[alphabetSize*p.j+p.i] = true

		if p.i == b.menu.TestRegister || p.j == b.menu.TestRegister {
			b.liveWires++
			if b.liveWires == alphabetSize {
				return
			}
		}

		for _, k := range b.menu.Adjacency(p.i) {
			shift, _ := b.menu.CribOffset(p.i, k)
			e := b.scrambler.Encode(p.j, shift)
			if !b.wires[alphabetSize*k+e] {
				stack = append(stack, wirePair{k, e})
			}
		}
		if p.i != p.j {
			for _, k := range b.menu.Adjacency(p.j) {
				shift, _ := b.menu.CribOffset(p.j, k)
				e := b.scrambler.Encode(p.i, shift)
				if !b.wires[alphabetSize*k+e] {
					stack = append(stack, wirePair{k, e})
				}
			}
		}
	}
}

// deadPartnerInTestRegisterRow finds the single letter the test register
// did NOT energize against, used by the 25-live-wire stop case.
func (b *Bombe) deadPartnerInTestRegisterRow() int {
	for x := 0; x < alphabetSize; x++ {
		if !b.wires[alphabetSize*b.menu.TestRegister+x] {
			return x
		}
	}
	return -1
}

// CheckStop evaluates the wire matrix at the current rotation against
// the live-wire count branches of spec §4.8, running the checking
// machine (spec §4.9) when enabled and required. A nil, nil return
// means no stop at this rotation.
func (b *Bombe) CheckStop() (*Stop, error) {
	switch b.liveWires {
	case alphabetSize:
		// Every letter energized: the hypothesis explains nothing,
		// since it's indistinguishable from "every letter is live" at
		// essentially every rotation. Not a stop.
		return nil, nil

	case 25:
		partner := b.deadPartnerInTestRegisterRow()
		return b.acceptSingleHypothesis(partner)

	case 1:
		return b.acceptSingleHypothesis(b.testRegisterPair)

	default:
		return b.checkRemainingHypotheses()
	}
}

// acceptSingleHypothesis handles the 25-live and 1-live branches, which
// both uniquely determine the test register's partner without needing
// to try every candidate.
func (b *Bombe) acceptSingleHypothesis(partner int) (*Stop, error) {
	if !b.check {
		return b.emptyStop(), nil
	}
	pb := b.checkingMachine(partner)
	if pb == nil {
		return nil, nil
	}
	ind, err := b.scrambler.Indicator()
	if err != nil {
		return nil, err
	}
	return &Stop{Indicator: ind, Plugboard: pb, Configuration: b.configuration}, nil
}

// checkRemainingHypotheses handles the 2..24-live branch (spec §4.8): a
// stop reported without the checking machine is too noisy to trust, so
// with checking disabled this branch reports an under-determined stop
// (empty plugboard) so operators can see how often it fires; with
// checking enabled, every candidate partner for the test register is
// tried and a stop is only reported if exactly one survives.
func (b *Bombe) checkRemainingHypotheses() (*Stop, error) {
	if !b.check {
		return b.emptyStop(), nil
	}

	var survivor *plugboard.Plugboard
	ambiguous := false
	for candidate := 0; candidate < alphabetSize; candidate++ {
		pb := b.checkingMachine(candidate)
		if pb == nil {
			continue
		}
		if survivor != nil {
			ambiguous = true
			break
		}
		survivor = pb
	}

	if survivor == nil {
		return nil, nil
	}
	if ambiguous {
		return b.emptyStop(), nil
	}

	ind, err := b.scrambler.Indicator()
	if err != nil {
		return nil, err
	}
	return &Stop{Indicator: ind, Plugboard: survivor, Configuration: b.configuration}, nil
}

func (b *Bombe) emptyStop() *Stop {
	ind, _ := b.scrambler.Indicator()
	return &Stop{Indicator: ind, Plugboard: plugboard.New(), Configuration: b.configuration}
}

// checkingMachine re-energizes under the hypothesis that the test
// register pairs with candidate, then reads off the resulting wire
// matrix as a deduced plugboard (spec §4.9). Returns nil if the
// hypothesis is self-contradictory: some letter would need two distinct
// partners. Always re-energizes from scratch, even when candidate is
// the same hypothesis Sweep already energized: this method is called
// in a loop over every candidate in the 2..24-live branch, and an
// earlier candidate's energization would otherwise leak into a later
// one's wire matrix.
func (b *Bombe) checkingMachine(candidate int) *plugboard.Plugboard {
	b.resetWires()
	b.energize(b.menu.TestRegister, candidate)

	pb := plugboard.New()
	record := func(i, j int) bool {
		if i == j {
			// A letter wired only to itself carries no stecker
			// information; the plugboard has no representation for
			// a letter plugged to itself, so there's nothing to record.
			return true
		}
		if existing, ok := pb.Partner(i); ok {
			return existing == j
		}
		return pb.Add(i, j) == nil
	}

	if !record(b.menu.TestRegister, candidate) {
		return nil
	}

	for i := 0; i < alphabetSize; i++ {
		count := 0
		unique := -1
		for j := 0; j < alphabetSize; j++ {
			if b.wires[alphabetSize*i+j] {
				count++
				unique = j
			}
		}
		if count > 1 {
			return nil
		}
		if count == 0 {
			continue
		}
		if !record(i, unique) {
			return nil
		}
	}

	return pb
}

// Sweep drives every one of the 26^3 starting rotations for this rotor
// order, in lexicographic (left, middle, right) order, re-energizing the
// test register hypothesis fresh at each one and collecting every
// accepted stop (spec §4.10).
func (b *Bombe) Sweep() ([]Stop, error) {
	var stops []Stop

	for l := 0; l < alphabetSize; l++ {
		for m := 0; m < alphabetSize; m++ {
			for r := 0; r < alphabetSize; r++ {
				b.scrambler.SetRotation(l, m, r)
				b.resetWires()
				b.energize(b.menu.TestRegister, b.testRegisterPair)

				stop, err := b.CheckStop()
				if err != nil {
					return nil, err
				}
				if stop != nil {
					stops = append(stops, *stop)
				}
			}
		}
	}

	return stops, nil
}
