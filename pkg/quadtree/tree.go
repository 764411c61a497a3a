package quadtree

// Expand returns a node one level up whose center square is exactly n. Each
// quadrant of n moves to the inner corner of a new quadrant surrounded by
// empties, which is what guarantees a dead border exists before evolving.
// n must be a branch.
func (s *Store) Expand(n *Node) *Node {
	e := s.Empty(n.level - 1)
	nw := s.Branch(e, e, e, n.nw)
	ne := s.Branch(e, e, n.ne, e)
	sw := s.Branch(e, n.sw, e, e)
	se := s.Branch(n.se, e, e, e)
	return s.Branch(nw, ne, sw, se)
}

// Compact strips levels that only pad the live region with dead space:
// while the level is at least 3 and every non-center grand-quadrant is the
// canonical empty two levels down, the node shrinks to the four inner
// corner grand-quadrants. The checks are pointer comparisons against the
// interned empty, which is what canonicalization buys.
func (s *Store) Compact(n *Node) *Node {
	for n.level >= 3 {
		e := s.Empty(n.level - 2)
		if n.nw.nw == e && n.nw.ne == e && n.nw.sw == e &&
			n.ne.nw == e && n.ne.ne == e && n.ne.se == e &&
			n.sw.nw == e && n.sw.sw == e && n.sw.se == e &&
			n.se.ne == e && n.se.sw == e && n.se.se == e {
			n = s.Branch(n.nw.se, n.ne.sw, n.sw.ne, n.se.nw)
		} else {
			break
		}
	}
	return n
}

// SetCellAlive returns a tree identical to n except the cell at (x, y) is
// alive. The caller must have grown n until (x, y) fits its square.
//
// Quadrant offsets are taken modulo 2^64: a level 65 root wants an offset
// of 2^63, which wraps, but two's-complement addition still lands on the
// exact child coordinate for any input inside the square.
func (s *Store) SetCellAlive(n *Node, x, y int64) *Node {
	if n.level == 0 {
		return s.Leaf(true)
	}
	var offset int64
	if n.level > 1 && n.level < 66 {
		offset = int64(1) << uint(n.level-2)
	}
	if x < 0 {
		if y < 0 {
			return s.Branch(s.SetCellAlive(n.nw, x+offset, y+offset), n.ne, n.sw, n.se)
		}
		return s.Branch(n.nw, n.ne, s.SetCellAlive(n.sw, x+offset, y-offset), n.se)
	}
	if y < 0 {
		return s.Branch(n.nw, s.SetCellAlive(n.ne, x-offset, y+offset), n.sw, n.se)
	}
	return s.Branch(n.nw, n.ne, n.sw, s.SetCellAlive(n.se, x-offset, y-offset))
}
