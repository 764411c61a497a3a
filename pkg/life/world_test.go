package life

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlife/pkg/quadtree"
)

func aliveSet(w *World) []string {
	cells := w.DisplayList()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.X.String() + "," + c.Y.String()
	}
	return out
}

func newWorld(cells ...Cell) *World {
	w := New(Config{GC: GCDisabled})
	w.SetCellsAlive(cells)
	return w
}

func TestBlockStillLife(t *testing.T) {
	w := newWorld(Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})
	want := []string{"0,0", "1,0", "0,1", "1,1"}

	for i := 0; i < 8; i++ {
		w.Step()
		assert.ElementsMatch(t, want, aliveSet(w), "generation %d", i+1)
	}
	assert.EqualValues(t, 8, w.Generation())
}

func TestBlinkerOscillates(t *testing.T) {
	w := newWorld(Cell{0, 0}, Cell{1, 0}, Cell{2, 0})

	w.Step()
	assert.ElementsMatch(t, []string{"1,-1", "1,0", "1,1"}, aliveSet(w))

	w.Step()
	assert.ElementsMatch(t, []string{"0,0", "1,0", "2,0"}, aliveSet(w))
}

func TestGliderTranslates(t *testing.T) {
	glider := []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	w := newWorld(glider...)

	for i := 0; i < 4; i++ {
		w.Step()
	}

	want := make([]string, len(glider))
	for i, c := range glider {
		want[i] = big.NewInt(c.X + 1).String() + "," + big.NewInt(c.Y + 1).String()
	}
	assert.ElementsMatch(t, want, aliveSet(w))
}

func TestBlinkerCrossesInt64Corner(t *testing.T) {
	const m = math.MaxInt64
	w := newWorld(Cell{m, m}, Cell{m - 1, m}, Cell{m - 2, m})

	w.Step()

	max := new(big.Int).SetInt64(m)
	x := new(big.Int).Sub(max, big.NewInt(1))
	above := new(big.Int).Sub(max, big.NewInt(1))
	below := new(big.Int).Add(max, big.NewInt(1))
	want := []string{
		x.String() + "," + above.String(),
		x.String() + "," + max.String(),
		x.String() + "," + below.String(),
	}
	assert.ElementsMatch(t, want, aliveSet(w))

	// A second step brings the blinker back to horizontal, still centered
	// one cell inside the 64-bit corner.
	w.Step()
	assert.ElementsMatch(t, []string{
		new(big.Int).SetInt64(m - 2).String() + "," + max.String(),
		new(big.Int).SetInt64(m - 1).String() + "," + max.String(),
		max.String() + "," + max.String(),
	}, aliveSet(w))
}

func TestEmptyWorldStepIsNoop(t *testing.T) {
	w := New(DefaultConfig())
	w.SetCellsAlive(nil)

	w.Step()
	w.Step()

	assert.Empty(t, w.DisplayList())
	assert.Zero(t, w.Generation())
	assert.Zero(t, w.Population().Sign())
}

func TestCanonicalSharing(t *testing.T) {
	var cells []Cell
	for y := int64(0); y < 4; y++ {
		for x := int64(0); x < 4; x++ {
			cells = append(cells, Cell{x, y})
		}
	}
	w := newWorld(cells...)

	// The root composes several copies of the all-alive 2x2 square, but
	// the store holds exactly one.
	fullLevel1 := 0
	w.Store().Range(func(n *quadtree.Node) bool {
		if n.Level() == 1 && n.Population().Cmp(big.NewInt(4)) == 0 {
			fullLevel1++
		}
		return true
	})
	assert.Equal(t, 1, fullLevel1)
}

func TestAutoExpandOnDistantCell(t *testing.T) {
	w := newWorld(Cell{0, 0}, Cell{1 << 40, 1 << 40})
	assert.ElementsMatch(t, []string{"0,0", "1099511627776,1099511627776"}, aliveSet(w))
	assert.GreaterOrEqual(t, w.Stats().Level, 41)
}

func TestStatsSnapshot(t *testing.T) {
	w := newWorld(Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})
	st := w.Stats()

	assert.Zero(t, st.Population.Cmp(big.NewInt(4)))
	assert.GreaterOrEqual(t, st.Level, 3)
	assert.Positive(t, st.LiveNodes)
	assert.GreaterOrEqual(t, st.NodesCreated, int64(st.LiveNodes))

	sum := new(big.Int)
	for _, q := range st.Quadrants {
		require.NotNil(t, q)
		sum.Add(sum, q)
	}
	assert.Zero(t, sum.Cmp(st.Population))
}

func TestReclamationPreservesResults(t *testing.T) {
	glider := []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	plain := newWorld(glider...)
	swept := New(Config{GC: GCGenerations, GCEvery: 1})
	swept.SetCellsAlive(glider)
	tight := New(Config{GC: GCNodes, GCThreshold: 16})
	tight.SetCellsAlive(glider)

	for i := 0; i < 12; i++ {
		plain.Step()
		swept.Step()
		tight.Step()
	}

	assert.ElementsMatch(t, aliveSet(plain), aliveSet(swept))
	assert.ElementsMatch(t, aliveSet(plain), aliveSet(tight))
	assert.Less(t, swept.Store().Len(), plain.Store().Len())
}

func TestShutdownDropsEverything(t *testing.T) {
	w := newWorld(Cell{0, 0})
	w.Shutdown()
	assert.Empty(t, w.DisplayList())
	assert.Zero(t, w.Store().Len())
}
