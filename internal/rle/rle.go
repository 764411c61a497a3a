// Package rle decodes Run-Length Encoded Life patterns into coordinate
// lists. The format is described at
// https://www.conwaylife.com/wiki/Run_Length_Encoded: `#` lines are
// comments, an `x = W, y = H[, rule = ...]` header gives the bounding box,
// and the body runs `b` (dead), `o` (alive), digits (run length), `$`
// (end of row) and `!` (end of pattern).
package rle

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"quadlife/pkg/life"
)

// Decode reads an RLE pattern and returns its alive cells translated so
// the pattern's top-left corner lands at (originX, originY). The header's
// bounding box clamps the origin so the whole pattern stays inside the
// signed 64-bit coordinate range. Malformed input yields a nil list and an
// error; the engine never consumes partial patterns.
func Decode(r io.Reader, originX, originY int64) ([]life.Cell, error) {
	var cells []life.Cell
	x, y := originX, originY
	run := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == 'x' {
			var err error
			originX, originY, err = clampOrigin(line, originX, originY)
			if err != nil {
				return nil, err
			}
			x, y = originX, originY
			continue
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			count := run
			if count == 0 {
				count = 1
			}
			switch {
			case c == ' ':
			case c == 'b':
				x += int64(count)
				run = 0
			case c == 'o':
				for ; count > 0; count-- {
					cells = append(cells, life.Cell{X: x, Y: y})
					x++
				}
				run = 0
			case c == '$':
				y += int64(count)
				x = originX
				run = 0
			case c >= '0' && c <= '9':
				run = 10*run + int(c-'0')
			case c == '!':
				return cells, nil
			default:
				return nil, fmt.Errorf("rle: unexpected character %q", c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rle: %w", err)
	}
	return cells, nil
}

// clampOrigin parses the `x = W, y = H` header and pulls the origin back
// whenever origin plus bound would pass the 64-bit corner.
func clampOrigin(line string, originX, originY int64) (int64, int64, error) {
	xBound, yBound, err := parseHeader(line)
	if err != nil {
		return 0, 0, err
	}
	if xBound > 0 && originX > math.MaxInt64-(xBound-1) {
		originX = math.MaxInt64 - xBound
	}
	if yBound > 0 && originY > math.MaxInt64-(yBound-1) {
		originY = math.MaxInt64 - yBound
	}
	return originX, originY, nil
}

func parseHeader(line string) (int64, int64, error) {
	var xBound, yBound int64
	seenX, seenY := false, false
	for _, part := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return 0, 0, fmt.Errorf("rle: malformed header %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, 0, fmt.Errorf("rle: bad x bound %q", value)
			}
			xBound, seenX = n, true
		case "y":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, 0, fmt.Errorf("rle: bad y bound %q", value)
			}
			yBound, seenY = n, true
		case "rule":
			// B3/S23 is hard-coded; the rule tag is accepted and ignored.
		default:
			return 0, 0, fmt.Errorf("rle: unknown header key %q", key)
		}
	}
	if !seenX || !seenY {
		return 0, 0, fmt.Errorf("rle: header %q missing x or y", line)
	}
	return xBound, yBound, nil
}
