package quadtree

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow2TableAndOverflow(t *testing.T) {
	assert.Zero(t, pow2(0).Cmp(big.NewInt(1)))
	assert.Zero(t, pow2(10).Cmp(big.NewInt(1024)))

	// Past the table, values are computed on demand.
	want := new(big.Int).Lsh(big.NewInt(1), LevelMax+5)
	assert.Zero(t, pow2(LevelMax+5).Cmp(want))
}

func TestAppendAliveCellsLevel1(t *testing.T) {
	s := NewStore()
	root := s.Empty(1)
	root = s.SetCellAlive(root, -1, -1)
	root = s.SetCellAlive(root, 0, 0)

	assert.ElementsMatch(t, []string{"-1,-1", "0,0"}, coords(root))
}

func TestAppendAliveCellsShiftedOrigin(t *testing.T) {
	s := NewStore()
	root := s.Empty(2)
	root = s.SetCellAlive(root, 1, -2)

	origin := new(big.Int).Lsh(big.NewInt(1), 100)
	cells := root.AppendAliveCells(origin, big.NewInt(0), nil)
	assert.Len(t, cells, 1)
	wantX := new(big.Int).Add(origin, big.NewInt(1))
	assert.Zero(t, cells[0].X.Cmp(wantX))
	assert.Zero(t, cells[0].Y.Cmp(big.NewInt(-2)))
}

func TestAppendAliveCellsAppends(t *testing.T) {
	s := NewStore()
	a := s.SetCellAlive(s.Empty(2), 0, 0)
	b := s.SetCellAlive(s.Empty(2), 1, 1)

	list := a.AppendAliveCells(big.NewInt(0), big.NewInt(0), nil)
	list = b.AppendAliveCells(big.NewInt(0), big.NewInt(0), list)
	assert.Len(t, list, 2)
}
