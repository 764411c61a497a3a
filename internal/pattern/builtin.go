package pattern

import (
	"math"
	"strconv"

	"quadlife/pkg/life"
)

// offsetFromMap reads the optional x/y translation keys shared by all
// built-in patterns.
func offsetFromMap(cfg map[string]string) (int64, int64) {
	var dx, dy int64
	if cfg == nil {
		return 0, 0
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			dx = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			dy = parsed
		}
	}
	return dx, dy
}

func static(cells []life.Cell) Factory {
	return func(cfg map[string]string) []life.Cell {
		dx, dy := offsetFromMap(cfg)
		return Translate(cells, dx, dy)
	}
}

// Block is the 2x2 still life.
var Block = []life.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

// Blinker is the period-2 oscillator, horizontal phase.
var Blinker = []life.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

// Glider travels one cell down-right every four generations.
var Glider = []life.Cell{
	{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
}

// Weekender is a period-7 orthogonal spaceship.
var Weekender = []life.Cell{
	{X: 2, Y: 0}, {X: 15, Y: 0},
	{X: 2, Y: 1}, {X: 15, Y: 1},
	{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 14, Y: 2}, {X: 16, Y: 2},
	{X: 2, Y: 3}, {X: 15, Y: 3},
	{X: 2, Y: 4}, {X: 15, Y: 4},
	{X: 3, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}, {X: 9, Y: 5}, {X: 10, Y: 5}, {X: 14, Y: 5},
	{X: 7, Y: 6}, {X: 8, Y: 6}, {X: 9, Y: 6}, {X: 10, Y: 6},
	{X: 3, Y: 7}, {X: 4, Y: 7}, {X: 5, Y: 7}, {X: 6, Y: 7},
	{X: 11, Y: 7}, {X: 12, Y: 7}, {X: 13, Y: 7}, {X: 14, Y: 7},
	{X: 5, Y: 9}, {X: 12, Y: 9},
	{X: 6, Y: 10}, {X: 7, Y: 10}, {X: 10, Y: 10}, {X: 11, Y: 10},
}

// Siesta is a period-5 oscillator.
var Siesta = []life.Cell{
	{X: 13, Y: 0}, {X: 14, Y: 0},
	{X: 5, Y: 1}, {X: 6, Y: 1}, {X: 12, Y: 1}, {X: 14, Y: 1},
	{X: 5, Y: 2}, {X: 7, Y: 2}, {X: 12, Y: 2},
	{X: 7, Y: 3}, {X: 11, Y: 3}, {X: 12, Y: 3}, {X: 14, Y: 3},
	{X: 5, Y: 4}, {X: 7, Y: 4}, {X: 8, Y: 4}, {X: 14, Y: 4}, {X: 15, Y: 4}, {X: 16, Y: 4},
	{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 11, Y: 5}, {X: 13, Y: 5}, {X: 17, Y: 5},
	{X: 2, Y: 6}, {X: 6, Y: 6}, {X: 8, Y: 6}, {X: 14, Y: 6}, {X: 15, Y: 6}, {X: 16, Y: 6},
	{X: 3, Y: 7}, {X: 4, Y: 7}, {X: 5, Y: 7}, {X: 11, Y: 7}, {X: 12, Y: 7}, {X: 14, Y: 7},
	{X: 5, Y: 8}, {X: 7, Y: 8}, {X: 8, Y: 8}, {X: 12, Y: 8},
	{X: 7, Y: 9}, {X: 12, Y: 9}, {X: 14, Y: 9},
	{X: 5, Y: 10}, {X: 7, Y: 10}, {X: 13, Y: 10}, {X: 14, Y: 10},
	{X: 5, Y: 11}, {X: 6, Y: 11},
}

// Methuselah is a small seed that churns for many generations before
// settling.
var Methuselah = []life.Cell{
	{X: -2, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 2}, {X: -1, Y: -2}, {X: -1, Y: 1},
	{X: 0, Y: -2}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0},
	{X: 2, Y: -2}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
}

// CornerGlider is a glider whose leading edge touches the signed 64-bit
// corner, so the first few generations cross out of int64 range.
var CornerGlider = []life.Cell{
	{X: math.MaxInt64 - 2, Y: math.MaxInt64 - 3},
	{X: math.MaxInt64 - 1, Y: math.MaxInt64 - 2},
	{X: math.MaxInt64 - 3, Y: math.MaxInt64 - 1},
	{X: math.MaxInt64 - 2, Y: math.MaxInt64 - 1},
	{X: math.MaxInt64 - 1, Y: math.MaxInt64 - 1},
}

// CornerOscillators puts a horizontal blinker in each corner of the signed
// 64-bit coordinate range.
var CornerOscillators = []life.Cell{
	{X: math.MinInt64, Y: math.MinInt64},
	{X: math.MinInt64 + 1, Y: math.MinInt64},
	{X: math.MinInt64 + 2, Y: math.MinInt64},
	{X: math.MaxInt64, Y: math.MinInt64},
	{X: math.MaxInt64 - 1, Y: math.MinInt64},
	{X: math.MaxInt64 - 2, Y: math.MinInt64},
	{X: math.MinInt64, Y: math.MaxInt64},
	{X: math.MinInt64 + 1, Y: math.MaxInt64},
	{X: math.MinInt64 + 2, Y: math.MaxInt64},
	{X: math.MaxInt64, Y: math.MaxInt64},
	{X: math.MaxInt64 - 1, Y: math.MaxInt64},
	{X: math.MaxInt64 - 2, Y: math.MaxInt64},
}

func init() {
	Register("block", static(Block))
	Register("blinker", static(Blinker))
	Register("glider", static(Glider))
	Register("weekender", static(Weekender))
	Register("siesta", static(Siesta))
	Register("methuselah", static(Methuselah))
	Register("corner-glider", static(CornerGlider))
	Register("corner-oscillators", static(CornerOscillators))
}
