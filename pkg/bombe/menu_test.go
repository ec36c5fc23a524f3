package bombe

import "testing"

// TestBuildMenuRejectsSelfMapping matches spec §8 scenario 4: a crib
// position cannot pair a letter with itself.
func TestBuildMenuRejectsSelfMapping(t *testing.T) {
	_, err := BuildMenu("a", "a")
	if err == nil {
		t.Fatal("expected error for self-mapping crib position")
	}
	if _, ok := err.(*InvalidInputError); !ok {
		t.Errorf("error type = %T, want *InvalidInputError", err)
	}
}

func TestBuildMenuRejectsLengthMismatch(t *testing.T) {
	_, err := BuildMenu("ab", "a")
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestBuildMenuSimpleEdge(t *testing.T) {
	m, err := BuildMenu("ab", "ba")
	if err != nil {
		t.Fatalf("BuildMenu returned error: %v", err)
	}

	if !m.HasNode(0) || !m.HasNode(1) {
		t.Fatal("expected both nodes 0 and 1 to survive")
	}
	// Both positions pair a with b; position 1 is written last, so the
	// edge carries its offset, 2.
	if k, ok := m.CribOffset(0, 1); !ok || k != 2 {
		t.Errorf("CribOffset(0,1) = (%d,%v), want (2,true)", k, ok)
	}
	if k, ok := m.CribOffset(1, 0); !ok || k != 2 {
		t.Errorf("CribOffset(1,0) = (%d,%v), want (2,true)", k, ok)
	}
}

// TestBuildMenuSelectsHigherLoopComponent builds two disjoint
// components -- a 3-node triangle (one loop) over letters a,b,c and a
// 2-node tree (no loop) over letters d,e -- and verifies the triangle
// survives pruning (spec §4.6's (loop count, node count) selection).
func TestBuildMenuSelectsHigherLoopComponent(t *testing.T) {
	cipher := "abcd"
	crib := "bcae"

	m, err := BuildMenu(cipher, crib)
	if err != nil {
		t.Fatalf("BuildMenu returned error: %v", err)
	}

	for _, letter := range []int{0, 1, 2} {
		if !m.HasNode(letter) {
			t.Errorf("expected triangle node %d to survive pruning", letter)
		}
	}
	for _, letter := range []int{3, 4} {
		if m.HasNode(letter) {
			t.Errorf("expected tree node %d to be destroyed", letter)
		}
	}

	if m.TestRegister != 0 {
		t.Errorf("TestRegister = %d, want 0", m.TestRegister)
	}

	for _, letter := range []int{0, 1, 2} {
		if len(m.Adjacency(letter)) != 2 {
			t.Errorf("Adjacency(%d) has %d neighbors, want 2", letter, len(m.Adjacency(letter)))
		}
	}
	for _, letter := range []int{3, 4} {
		if len(m.Adjacency(letter)) != 0 {
			t.Errorf("Adjacency(%d) has %d neighbors, want 0 (pruned)", letter, len(m.Adjacency(letter)))
		}
	}
}

// TestBuildMenuSymmetry verifies spec §8's universal menu-symmetry
// property: M[i][j] exists iff M[j][i] exists, with equal values.
func TestBuildMenuSymmetry(t *testing.T) {
	m, err := BuildMenu("abcd", "bcae")
	if err != nil {
		t.Fatalf("BuildMenu returned error: %v", err)
	}
	for i := 0; i < alphabetSize; i++ {
		for j := 0; j < alphabetSize; j++ {
			if m.edges[i][j] != m.edges[j][i] {
				t.Errorf("edges[%d][%d]=%d != edges[%d][%d]=%d", i, j, m.edges[i][j], j, i, m.edges[j][i])
			}
		}
	}
}
