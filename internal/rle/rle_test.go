package rle

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlife/pkg/life"
)

const gliderRLE = `#N Glider
#C The smallest spaceship.
x = 3, y = 3, rule = B3/S23
bob$2bo$3o!
`

func TestDecodeGlider(t *testing.T) {
	cells, err := Decode(strings.NewReader(gliderRLE), 0, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []life.Cell{
		{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}, cells)
}

func TestDecodeWithOrigin(t *testing.T) {
	cells, err := Decode(strings.NewReader(gliderRLE), 100, -50)
	require.NoError(t, err)
	assert.Contains(t, cells, life.Cell{X: 101, Y: -50})
	assert.Contains(t, cells, life.Cell{X: 100, Y: -48})
	assert.Len(t, cells, 5)
}

func TestDecodeRunLengths(t *testing.T) {
	// A 4x1 bar after two dead cells, then a row skip of 2.
	input := "x = 6, y = 3\n2b4o2$o!\n"
	cells, err := Decode(strings.NewReader(input), 0, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []life.Cell{
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 2},
	}, cells)
}

func TestDecodeStopsAtBang(t *testing.T) {
	input := "x = 2, y = 1\noo!ooooo\n"
	cells, err := Decode(strings.NewReader(input), 0, 0)
	require.NoError(t, err)
	assert.Len(t, cells, 2)
}

func TestDecodeClampsAtInt64Corner(t *testing.T) {
	input := "x = 3, y = 1\n3o!\n"
	cells, err := Decode(strings.NewReader(input), math.MaxInt64-1, 0)
	require.NoError(t, err)
	require.Len(t, cells, 3)
	for _, c := range cells {
		assert.LessOrEqual(t, c.X, int64(math.MaxInt64))
		assert.GreaterOrEqual(t, c.X, int64(math.MaxInt64-3))
	}
}

func TestDecodeErrors(t *testing.T) {
	for name, input := range map[string]string{
		"unknown body char": "x = 2, y = 2\noz!\n",
		"malformed header":  "x 2, y = 2\no!\n",
		"bad bound":         "x = two, y = 2\no!\n",
		"unknown key":       "x = 2, y = 2, z = 1\no!\n",
	} {
		t.Run(name, func(t *testing.T) {
			cells, err := Decode(strings.NewReader(input), 0, 0)
			assert.Error(t, err)
			assert.Nil(t, cells)
		})
	}
}
