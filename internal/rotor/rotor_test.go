package rotor

import "testing"

func mustNew(t *testing.T, id, wiring string, turnover rune) *Rotor {
	t.Helper()
	r, err := New(id, wiring, turnover)
	if err != nil {
		t.Fatalf("New(%s) returned error: %v", id, err)
	}
	return r
}

func TestNewRejectsBadWiring(t *testing.T) {
	if _, err := New("bad", "TOOSHORT", 'a'); err == nil {
		t.Error("expected error for wiring of the wrong length")
	}
	if _, err := New("bad", "AAAAAAAAAAAAAAAAAAAAAAAAAA", 'a'); err == nil {
		t.Error("expected error for non-bijective wiring")
	}
}

func TestRotorForwardBackwardInvolution(t *testing.T) {
	r := mustNew(t, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'q')

	for ring := 0; ring < Size; ring++ {
		r.SetRingOffset(ring)
		for rot := 0; rot < Size; rot++ {
			r.SetRotationPermanent(rot)
			for c := 0; c < Size; c++ {
				fwd := r.Encode(c, true)
				back := r.Encode(fwd, false)
				if back != c {
					t.Fatalf("ring=%d rot=%d c=%d: Encode(Encode(c,true),false) = %d, want %d", ring, rot, c, back, c)
				}
			}
		}
	}
}

func TestRotorIsAtNotch(t *testing.T) {
	r := mustNew(t, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'q')
	qIdx := 16 // 'q' - 'a'

	for rot := 0; rot < Size; rot++ {
		r.SetRotationPermanent(rot)
		want := rot == qIdx
		if got := r.IsAtNotch(); got != want {
			t.Errorf("rotation=%d: IsAtNotch() = %v, want %v", rot, got, want)
		}
	}
}

func TestRotorRotateWraps(t *testing.T) {
	r := mustNew(t, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'q')
	r.SetRotationPermanent(25)
	r.Rotate()
	if r.Rotation() != 0 {
		t.Errorf("Rotation() after wraparound = %d, want 0", r.Rotation())
	}
}

func TestRotorReset(t *testing.T) {
	r := mustNew(t, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'q')
	r.SetRotationPermanent(5)
	r.Rotate()
	r.Rotate()
	if r.Rotation() != 7 {
		t.Fatalf("Rotation() = %d, want 7", r.Rotation())
	}
	r.Reset()
	if r.Rotation() != 5 {
		t.Errorf("Rotation() after Reset() = %d, want 5", r.Rotation())
	}
}

func TestRotorCopyZeroesRingAndRotation(t *testing.T) {
	r := mustNew(t, "I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'q')
	r.SetRingOffset(10)
	r.SetRotationPermanent(15)

	clone := r.Copy()
	if clone.RingOffset() != 0 {
		t.Errorf("Copy().RingOffset() = %d, want 0", clone.RingOffset())
	}
	if clone.Rotation() != 0 {
		t.Errorf("Copy().Rotation() = %d, want 0", clone.Rotation())
	}

	// Wiring must still match: same forward substitution at rotation 0.
	if clone.Encode(0, true) != r.forwardMap[0] {
		t.Error("Copy() did not preserve wiring")
	}
}
