package alphabet

import "testing"

func TestToIndexAndToRune(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 0},
		{'m', 12},
		{'z', 25},
	}

	for _, tt := range tests {
		got, err := ToIndex(tt.r)
		if err != nil {
			t.Fatalf("ToIndex(%q) returned error: %v", tt.r, err)
		}
		if got != tt.want {
			t.Errorf("ToIndex(%q) = %d, want %d", tt.r, got, tt.want)
		}

		back, err := ToRune(got)
		if err != nil {
			t.Fatalf("ToRune(%d) returned error: %v", got, err)
		}
		if back != tt.r {
			t.Errorf("ToRune(%d) = %q, want %q", got, back, tt.r)
		}
	}
}

func TestToIndexRejectsNonLetters(t *testing.T) {
	for _, r := range []rune{'A', '1', ' ', '!'} {
		if _, err := ToIndex(r); err == nil {
			t.Errorf("ToIndex(%q) expected error, got nil", r)
		}
	}
}

func TestStringToIndicesPreservesSpaces(t *testing.T) {
	indices, err := StringToIndices("HI there")
	if err != nil {
		t.Fatalf("StringToIndices returned error: %v", err)
	}

	want := []int{7, 8, -1, 19, 7, 4, 17, 4}
	if len(indices) != len(want) {
		t.Fatalf("got %d indices, want %d", len(indices), len(want))
	}
	for i, idx := range indices {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
	}
}

func TestIndicesToStringRoundTrip(t *testing.T) {
	original := "hello world"
	indices, err := StringToIndices(original)
	if err != nil {
		t.Fatalf("StringToIndices returned error: %v", err)
	}

	out, err := IndicesToString(indices)
	if err != nil {
		t.Fatalf("IndicesToString returned error: %v", err)
	}

	want := "HELLO WORLD"
	if out != want {
		t.Errorf("IndicesToString = %q, want %q", out, want)
	}
}

func TestValidateLowercase(t *testing.T) {
	if r, err := ValidateLowercase("abcxyz"); err != nil {
		t.Errorf("unexpected error for valid string: %v (rune %q)", err, r)
	}
	if _, err := ValidateLowercase("abcX"); err == nil {
		t.Error("expected error for uppercase letter")
	}
}
