package bombe

import (
	"strconv"

	"github.com/forcedentropy/enigma/internal/alphabet"
)

const alphabetSize = alphabet.Size

// nodeStatus tracks, per letter, whether the menu graph currently has a
// node there at all. Per spec §9's design note, this is kept as its own
// parallel array rather than overloading the edge matrix's diagonal
// with "present / DFS-visited / marked-for-destruction" meanings.
type nodeStatus int8

const (
	nodeAbsent nodeStatus = iota
	nodePresent
)

// Menu is the undirected graph over the 26-letter alphabet extracted
// from a ciphertext/crib pair (spec §3 Menu graph, §4.6). After
// construction exactly one connected component survives; everything
// else has been pruned.
type Menu struct {
	// edges[i][j] is 0 (no edge) or the crib offset k>=1 recorded for
	// position k-1 pairing letters i and j.
	edges [alphabetSize][alphabetSize]int
	state [alphabetSize]nodeStatus

	adjacency [alphabetSize][]int

	// TestRegister is the surviving component's most-connected node
	// (spec §3 Bombe auxiliary state).
	TestRegister int
}

// component is the result of exploring one connected subgraph during
// menu construction: its member nodes, the number of edges that closed
// a cycle, and the node with maximum in-component degree.
type component struct {
	nodes         []int
	loops         int
	maxDegree     int
	maxDegreeNode int
}

// BuildMenu constructs the menu graph from a ciphertext/crib pair of
// equal length (spec §4.6). Fails if the lengths differ, either string
// contains a non a-z character, or any position pairs a letter with
// itself (impossible under Enigma, since no letter ever encodes to
// itself).
func BuildMenu(ciphertext, crib string) (*Menu, error) {
	if len(ciphertext) != len(crib) {
		return nil, &InvalidInputError{Reason: "ciphertext and crib must be equal length"}
	}
	if r, err := alphabet.ValidateLowercase(ciphertext); err != nil {
		return nil, &InvalidInputError{Reason: "ciphertext contains invalid character " + string(r)}
	}
	if r, err := alphabet.ValidateLowercase(crib); err != nil {
		return nil, &InvalidInputError{Reason: "crib contains invalid character " + string(r)}
	}

	m := &Menu{}

	cipherRunes := []rune(ciphertext)
	cribRunes := []rune(crib)

	for k := range cipherRunes {
		t, _ := alphabet.ToIndex(cipherRunes[k])
		b, _ := alphabet.ToIndex(cribRunes[k])
		if t == b {
			letter, _ := alphabet.ToRune(t)
			return nil, &InvalidInputError{Reason: "letter " + string(letter) + " encodes to itself at position " + strconv.Itoa(k)}
		}
		m.edges[t][b] = k + 1
		m.edges[b][t] = k + 1
		m.state[t] = nodePresent
		m.state[b] = nodePresent
	}

	components := m.discoverComponents()
	if len(components) == 0 {
		return nil, &EmptyMenuError{Reason: "no connected subgraph in crib"}
	}

	winner := bestComponent(components)
	m.destroyAllExcept(components, winner)
	m.buildAdjacencyCache()
	m.TestRegister = winner.maxDegreeNode

	return m, nil
}

// discoverComponents runs a DFS from every not-yet-visited present
// node, without mutating m.state or m.edges -- destruction happens only
// after every component has been discovered and the winner chosen, per
// spec §9's note to make the DFS/destroy phases explicit rather than
// relying on marker-overwrite ordering.
func (m *Menu) discoverComponents() []component {
	visited := [alphabetSize]bool{}
	var components []component

	for i := 0; i < alphabetSize; i++ {
		if m.state[i] != nodePresent || visited[i] {
			continue
		}
		comp := m.exploreComponent(i, &visited)
		components = append(components, comp)
	}

	return components
}

// exploreComponent runs an iterative DFS (explicit stack, to avoid any
// recursion-depth assumption) starting at root, marking every reached
// node visited, counting cycle-closing edges, and tracking the node of
// maximum in-component degree.
func (m *Menu) exploreComponent(root int, visited *[alphabetSize]bool) component {
	type frame struct{ node, parent int }

	stack := []frame{{root, -1}}
	comp := component{maxDegreeNode: root}
	seen := map[int]bool{}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[f.node] {
			continue
		}
		seen[f.node] = true
		visited[f.node] = true
		comp.nodes = append(comp.nodes, f.node)

		degree := 0
		for j := 0; j < alphabetSize; j++ {
			if m.edges[f.node][j] == 0 {
				continue
			}
			degree++
			if j == f.parent {
				continue
			}
			if seen[j] {
				comp.loops++
				continue
			}
			stack = append(stack, frame{j, f.node})
		}

		if degree > comp.maxDegree {
			comp.maxDegree = degree
			comp.maxDegreeNode = f.node
		}
	}

	return comp
}

// bestComponent picks the lexicographic maximum by (loop count, node
// count), per spec §4.6.
func bestComponent(components []component) component {
	best := components[0]
	for _, c := range components[1:] {
		if c.loops > best.loops || (c.loops == best.loops && len(c.nodes) > len(best.nodes)) {
			best = c
		}
	}
	return best
}

// destroyAllExcept zeroes the edges and presence markers for every
// component other than the winner.
func (m *Menu) destroyAllExcept(components []component, winner component) {
	for _, c := range components {
		if sameComponent(c, winner) {
			continue
		}
		for _, i := range c.nodes {
			for j := 0; j < alphabetSize; j++ {
				m.edges[i][j] = 0
				m.edges[j][i] = 0
			}
			m.state[i] = nodeAbsent
		}
	}
}

func sameComponent(a, b component) bool {
	return len(a.nodes) > 0 && len(b.nodes) > 0 && a.nodes[0] == b.nodes[0]
}

// buildAdjacencyCache records, for every surviving node, an ordered
// list of its current neighbors (spec §4.6).
func (m *Menu) buildAdjacencyCache() {
	for i := 0; i < alphabetSize; i++ {
		m.adjacency[i] = m.adjacency[i][:0]
		for j := 0; j < alphabetSize; j++ {
			if m.edges[i][j] != 0 {
				m.adjacency[i] = append(m.adjacency[i], j)
			}
		}
	}
}

// Adjacency returns the cached neighbor list for letter i.
func (m *Menu) Adjacency(i int) []int {
	return m.adjacency[i]
}

// CribOffset returns the scrambler right-rotor shift recorded for the
// edge between i and j, or false if no edge exists. The shift is the
// crib position plus one, not the bare position: the Enigma steps its
// right rotor before enciphering each letter, so the rotor offset in
// effect at ciphertext position k (0-indexed) is k+1 relative to the
// starting rotation.
func (m *Menu) CribOffset(i, j int) (int, bool) {
	k := m.edges[i][j]
	if k == 0 {
		return 0, false
	}
	return k, true
}

// HasNode reports whether letter i survived pruning as part of the
// winning component.
func (m *Menu) HasNode(i int) bool {
	return m.state[i] == nodePresent
}
