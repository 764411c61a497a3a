package quadtree

// Evolve returns the center square of n advanced exactly one generation of
// Conway's B3/S23 rule, one level down from n. The result is memoized on
// the node, so structurally identical regions are evaluated once for the
// lifetime of the store.
//
// n must be at level 2 or above; anything smaller has no interior to step.
func (s *Store) Evolve(n *Node) *Node {
	if n.level < 2 {
		panic("quadtree: Evolve called below level 2")
	}
	if n.evolved != nil {
		return n.evolved
	}
	switch {
	case !n.alive:
		// An all-dead node is the canonical empty, so its NW child is
		// already the canonical empty one level down.
		n.evolved = n.nw
	case n.level == 2:
		n.evolved = s.evolveBase(n)
	default:
		n.evolved = s.evolveSplit(n)
	}
	return n.evolved
}

// liveNext applies B3/S23 to a single cell.
func liveNext(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

func bit(n *Node) int {
	if n.alive {
		return 1
	}
	return 0
}

// evolveBase steps the four center cells of a 4x4 square. The border cells
// contribute neighbor counts only; the recursion one level up covers them
// through its overlapping inner squares.
func (s *Store) evolveBase(n *Node) *Node {
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se
	newNW := s.Leaf(liveNext(nw.se.alive,
		bit(nw.nw)+bit(nw.ne)+bit(ne.nw)+bit(nw.sw)+bit(ne.sw)+
			bit(sw.nw)+bit(sw.ne)+bit(se.nw)))
	newNE := s.Leaf(liveNext(ne.sw.alive,
		bit(nw.ne)+bit(ne.nw)+bit(ne.ne)+bit(nw.se)+bit(ne.se)+
			bit(sw.ne)+bit(se.nw)+bit(se.ne)))
	newSW := s.Leaf(liveNext(sw.ne.alive,
		bit(nw.sw)+bit(nw.se)+bit(ne.sw)+bit(sw.nw)+bit(se.nw)+
			bit(sw.sw)+bit(sw.se)+bit(se.sw)))
	newSE := s.Leaf(liveNext(se.nw.alive,
		bit(nw.se)+bit(ne.sw)+bit(ne.se)+bit(sw.ne)+bit(se.ne)+
			bit(sw.se)+bit(se.sw)+bit(se.se)))
	return s.Branch(newNW, newNE, newSW, newSE)
}

// evolveSplit steps a level N >= 3 square by tiling its central region with
// nine overlapping squares two levels down, evolving the four overlapping
// half-size neighborhoods they form, and reassembling the centers. The
// center of n one step forward equals the centers of those neighborhoods
// each stepped once, which is what closes the recursion.
func (s *Store) evolveSplit(n *Node) *Node {
	n00 := s.Branch(n.nw.nw.se, n.nw.ne.sw, n.nw.sw.ne, n.nw.se.nw)
	n01 := s.Branch(n.nw.ne.se, n.ne.nw.sw, n.nw.se.ne, n.ne.sw.nw)
	n02 := s.Branch(n.ne.nw.se, n.ne.ne.sw, n.ne.sw.ne, n.ne.se.nw)
	n10 := s.Branch(n.nw.sw.se, n.nw.se.sw, n.sw.nw.ne, n.sw.ne.nw)
	n11 := s.Branch(n.nw.se.se, n.ne.sw.sw, n.sw.ne.ne, n.se.nw.nw)
	n12 := s.Branch(n.ne.sw.se, n.ne.se.sw, n.se.nw.ne, n.se.ne.nw)
	n20 := s.Branch(n.sw.nw.se, n.sw.ne.sw, n.sw.sw.ne, n.sw.se.nw)
	n21 := s.Branch(n.sw.ne.se, n.se.nw.sw, n.sw.se.ne, n.se.sw.nw)
	n22 := s.Branch(n.se.nw.se, n.se.ne.sw, n.se.sw.ne, n.se.se.nw)

	newNW := s.Evolve(s.Branch(n00, n01, n10, n11))
	newNE := s.Evolve(s.Branch(n01, n02, n11, n12))
	newSW := s.Evolve(s.Branch(n10, n11, n20, n21))
	newSE := s.Evolve(s.Branch(n11, n12, n21, n22))
	return s.Branch(newNW, newNE, newSW, newSE)
}
