package quadtree

import "math/big"

// LevelMax bounds the precomputed power-of-two table used for display
// coordinate offsets. Offsets past the table are computed on demand.
const LevelMax = 68

var pow2Table = buildPow2Table()

func buildPow2Table() [LevelMax]*big.Int {
	var t [LevelMax]*big.Int
	t[0] = big.NewInt(1)
	for i := 1; i < LevelMax; i++ {
		t[i] = new(big.Int).Lsh(t[i-1], 1)
	}
	return t
}

// pow2 returns 2^n. Values under LevelMax come from the table and must not
// be mutated by callers.
func pow2(n int) *big.Int {
	if n < LevelMax {
		return pow2Table[n]
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

// Cell is an alive-cell coordinate on the unbounded plane. Coordinates are
// arbitrary precision because live regions drift past the 64-bit input
// range after enough generations.
type Cell struct {
	X, Y *big.Int
}

// AppendAliveCells appends the coordinate of every alive cell in n to list
// and returns it, with (originX, originY) naming the center of n's square.
// The result is unordered; sorting is the caller's concern.
func (n *Node) AppendAliveCells(originX, originY *big.Int, list []Cell) []Cell {
	if n.level == 0 {
		if n.alive {
			list = append(list, Cell{
				X: new(big.Int).Set(originX),
				Y: new(big.Int).Set(originY),
			})
		}
		return list
	}
	if n.level == 1 {
		// The four leaves sit immediately around the origin.
		xw := new(big.Int).Sub(originX, pow2Table[0])
		yn := new(big.Int).Sub(originY, pow2Table[0])
		if n.nw.alive {
			list = n.nw.AppendAliveCells(xw, yn, list)
		}
		if n.ne.alive {
			list = n.ne.AppendAliveCells(originX, yn, list)
		}
		if n.sw.alive {
			list = n.sw.AppendAliveCells(xw, originY, list)
		}
		if n.se.alive {
			list = n.se.AppendAliveCells(originX, originY, list)
		}
		return list
	}

	offset := pow2(n.level - 2)
	xw := new(big.Int).Sub(originX, offset)
	xe := new(big.Int).Add(originX, offset)
	yn := new(big.Int).Sub(originY, offset)
	ys := new(big.Int).Add(originY, offset)
	if n.nw.alive {
		list = n.nw.AppendAliveCells(xw, yn, list)
	}
	if n.ne.alive {
		list = n.ne.AppendAliveCells(xe, yn, list)
	}
	if n.sw.alive {
		list = n.sw.AppendAliveCells(xw, ys, list)
	}
	if n.se.alive {
		list = n.se.AppendAliveCells(xe, ys, list)
	}
	return list
}
