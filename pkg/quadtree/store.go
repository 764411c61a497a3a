package quadtree

import "math/big"

// nodeKey is the structural identity of a node: the level plus the alive
// bit for leaves, or the level plus the four child pointers for branches.
// Children are canonical, so pointer equality is structural equality and
// the runtime map hash doubles as the structural hash.
type nodeKey struct {
	nw, ne, sw, se *Node
	level          int
	alive          bool
}

// Store interns quadtree nodes so that at most one node exists per
// structural identity. All node creation goes through Leaf, Branch or
// Empty; the returned pointers stay valid until a Sweep removes them.
//
// A Store is not safe for concurrent use.
type Store struct {
	nodes   map[nodeKey]*Node
	created int64
}

// NewStore returns an empty canonical node store.
func NewStore() *Store {
	return &Store{nodes: make(map[nodeKey]*Node)}
}

// Leaf returns the canonical level 0 node with the given alive bit.
func (s *Store) Leaf(alive bool) *Node {
	key := nodeKey{level: 0, alive: alive}
	if n, ok := s.nodes[key]; ok {
		return n
	}
	var pop int64
	if alive {
		pop = 1
	}
	n := &Node{level: 0, alive: alive, population: big.NewInt(pop)}
	s.nodes[key] = n
	s.created++
	return n
}

// Branch returns the canonical branch with the given children. The four
// children must share a level; the result sits one level above them.
func (s *Store) Branch(nw, ne, sw, se *Node) *Node {
	key := nodeKey{nw: nw, ne: ne, sw: sw, se: se, level: nw.level + 1}
	if n, ok := s.nodes[key]; ok {
		return n
	}
	pop := new(big.Int).Add(nw.population, ne.population)
	pop.Add(pop, sw.population)
	pop.Add(pop, se.population)
	n := &Node{
		nw: nw, ne: ne, sw: sw, se: se,
		level:      nw.level + 1,
		population: pop,
		alive:      pop.Sign() > 0,
	}
	s.nodes[key] = n
	s.created++
	return n
}

// Empty returns the canonical all-dead node at the given level. Empties
// reclaimed by a Sweep are simply re-interned on the next call.
func (s *Store) Empty(level int) *Node {
	if level == 0 {
		return s.Leaf(false)
	}
	e := s.Empty(level - 1)
	return s.Branch(e, e, e, e)
}

// Len returns the number of nodes currently interned.
func (s *Store) Len() int { return len(s.nodes) }

// Created returns the lifetime count of nodes interned, including nodes
// since swept away.
func (s *Store) Created() int64 { return s.created }

// Range calls f for every interned node until f returns false. The
// iteration order is unspecified.
func (s *Store) Range(f func(*Node) bool) {
	for _, n := range s.nodes {
		if !f(n) {
			return
		}
	}
}

// Reset drops every interned node. Outstanding node pointers stop being
// canonical; callers discard their roots alongside.
func (s *Store) Reset() {
	s.nodes = make(map[nodeKey]*Node)
}
