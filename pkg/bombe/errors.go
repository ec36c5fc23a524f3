// Package bombe implements the Turing-Welchman Bombe cryptanalysis
// engine: the precomputed scrambler cache, the menu graph extracted
// from a crib, and the energization/stop-detection sweep (spec §1-§5).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package bombe

import "fmt"

// InvalidInputError reports a malformed crack request: mismatched
// ciphertext/crib lengths, a character outside a-z, a self-encoding
// position, or a job document that is not valid JSON or fails schema
// validation (spec §7). Unknown rotor/reflector names and malformed
// stecker pairs are reported by pkg/enigma as plain errors instead.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// EmptyMenuError reports that menu construction produced no connected
// subgraph to crack against (spec §7).
type EmptyMenuError struct {
	Reason string
}

func (e *EmptyMenuError) Error() string {
	return fmt.Sprintf("empty menu: %s", e.Reason)
}

// InternalInvariantViolation names the bug class of spec §7: wire-matrix
// symmetry broken, live-wire count out of range, or similar. No code in
// this module constructs it: the Bombe does not check these invariants
// at run time.
type InternalInvariantViolation struct {
	Reason string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Reason)
}
