package life

import (
	"math/big"

	"quadlife/pkg/quadtree"
)

// Cell is an initial-input coordinate. Input is bounded by signed 64-bit
// integers; once the simulation runs, live regions may drift past that
// range and are observable only through DisplayList.
type Cell struct {
	X, Y int64
}

// startLevel is the level of a fresh world's root. Never below 3, so the
// first Step has quadrant structure to inspect.
const startLevel = 3

// World drives a quadtree universe one generation at a time. It owns the
// canonical node store and holds the sole strong reference to the current
// root; stepping swaps the root for its evolution.
//
// A World is not safe for concurrent use.
type World struct {
	store      *quadtree.Store
	root       *quadtree.Node
	generation int64
	originX    *big.Int
	originY    *big.Int
	cfg        Config
}

// New constructs an empty world with the given configuration.
func New(cfg Config) *World {
	s := quadtree.NewStore()
	return &World{
		store:   s,
		root:    s.Empty(startLevel),
		originX: big.NewInt(0),
		originY: big.NewInt(0),
		cfg:     cfg,
	}
}

// Store exposes the world's canonical node store.
func (w *World) Store() *quadtree.Store { return w.store }

// Generation returns how many generations have been stepped.
func (w *World) Generation() int64 { return w.generation }

// Population returns the current live-cell count.
func (w *World) Population() *big.Int {
	if w.root == nil {
		return big.NewInt(0)
	}
	return w.root.Population()
}

// SetCellsAlive turns every listed cell alive, growing the root until each
// coordinate fits. Intended for initial input before stepping begins.
func (w *World) SetCellsAlive(cells []Cell) {
	for _, c := range cells {
		w.setCellAlive(c.X, c.Y)
	}
}

func (w *World) setCellAlive(x, y int64) {
	for !fits(w.root.Level(), x, y) {
		w.root = w.store.Expand(w.root)
	}
	w.root = w.store.SetCellAlive(w.root, x, y)
}

// fits reports whether (x, y) lies inside a square of the given level. A
// level 64 square already spans the whole signed 64-bit range.
func fits(level int, x, y int64) bool {
	if level >= 64 {
		return true
	}
	if level == 0 {
		return x == 0 && y == 0
	}
	min := -(int64(1) << uint(level-1))
	max := (int64(1) << uint(level-1)) - 1
	return x >= min && x <= max && y >= min && y <= max
}

// Step advances the world exactly one generation. Stepping an empty world
// is a no-op and does not count a generation.
func (w *World) Step() {
	if w.root == nil || !w.root.Alive() {
		return
	}
	// Grow until a dead ring surrounds the live region, so the next
	// generation cannot fall off the edge of the root square.
	for !w.root.BorderReady() {
		w.root = w.store.Expand(w.root)
	}
	w.root = w.store.Evolve(w.root)
	w.root = w.store.Compact(w.root)
	w.generation++
	w.maybeReclaim()
}

func (w *World) maybeReclaim() {
	switch w.cfg.GC {
	case GCGenerations:
		if w.cfg.GCEvery > 0 && w.generation%w.cfg.GCEvery == 0 {
			w.reclaim()
		}
	case GCNodes:
		if w.cfg.GCThreshold > 0 && w.store.Len() > w.cfg.GCThreshold {
			w.reclaim()
		}
	}
}

func (w *World) reclaim() {
	removed := w.store.Sweep(w.root)
	if w.cfg.Logger != nil {
		w.cfg.Logger.Debug("reclaimed unreachable nodes",
			"removed", removed,
			"live", w.store.Len(),
			"generation", w.generation)
	}
}

// DisplayList returns the coordinates of every alive cell relative to the
// world origin. The list is unordered.
func (w *World) DisplayList() []quadtree.Cell {
	return w.DisplayListAt(w.originX, w.originY)
}

// DisplayListAt returns the alive-cell coordinates with (originX, originY)
// naming the center of the root square.
func (w *World) DisplayListAt(originX, originY *big.Int) []quadtree.Cell {
	if w.root == nil {
		return nil
	}
	return w.root.AppendAliveCells(originX, originY, nil)
}

// Stats is a point-in-time snapshot of the world and its node store.
type Stats struct {
	Generation   int64
	Population   *big.Int
	Level        int
	LiveNodes    int
	NodesCreated int64

	// Per-quadrant populations of the root, in NW, NE, SW, SE order.
	Quadrants [4]*big.Int
}

// Stats reports the current generation, population, tree level and store
// usage.
func (w *World) Stats() Stats {
	st := Stats{
		Generation:   w.generation,
		Population:   w.Population(),
		LiveNodes:    w.store.Len(),
		NodesCreated: w.store.Created(),
	}
	if w.root != nil {
		st.Level = w.root.Level()
		st.Quadrants = [4]*big.Int{
			w.root.NW().Population(),
			w.root.NE().Population(),
			w.root.SW().Population(),
			w.root.SE().Population(),
		}
	}
	return st
}

// Shutdown drops the root and every interned node. The world must not be
// used afterwards.
func (w *World) Shutdown() {
	w.root = nil
	w.store.Reset()
}
