package reflector

import "testing"

func TestNewRejectsSelfMapping(t *testing.T) {
	// Identity mapping: every letter maps to itself, which reflectors forbid.
	_, err := New("bad", "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err == nil {
		t.Fatal("expected error for self-mapping reflector")
	}
}

func TestNewRejectsNonReciprocal(t *testing.T) {
	// A -> B, but B -> C (not back to A); no letter maps to itself.
	mapping := "BCDEFGHIJKLMNOPQRSTUVWXYZA"
	if _, err := New("bad", mapping); err == nil {
		t.Fatal("expected error for non-reciprocal mapping")
	}
}

func TestReflectorBIsReciprocal(t *testing.T) {
	refl, err := New("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	if err != nil {
		t.Fatalf("New(B) returned error: %v", err)
	}

	for i := 0; i < Size; i++ {
		out := refl.Reflect(i)
		if out == i {
			t.Errorf("Reflect(%d) = %d, letter maps to itself", i, i)
		}
		if refl.Reflect(out) != i {
			t.Errorf("Reflect(Reflect(%d)) = %d, want %d", i, refl.Reflect(out), i)
		}
	}
}
