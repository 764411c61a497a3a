// Package render turns display lists into something a human can look at:
// a character board for small patterns, a coordinate list otherwise, and
// an RGBA viewport for the GUI build.
package render

import (
	"fmt"
	"io"
	"math/big"

	"quadlife/pkg/quadtree"
)

const (
	// GridSizeMax is the largest bounding box drawn as a character
	// board. Anything wider or taller falls back to a coordinate list.
	GridSizeMax = 128
	// ListCellsMax caps the coordinate list printed for large boards.
	ListCellsMax = 100
)

// Draw writes cells to w, either as a board of '*' (alive) and '_' (dead)
// when the bounding box fits GridSizeMax, or as a capped coordinate list.
func Draw(w io.Writer, cells []quadtree.Cell) error {
	if len(cells) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	minX, minY, maxX, maxY := bounds(cells)
	if _, err := fmt.Fprintf(w, "bounds min(%s, %s) max(%s, %s)\n", minX, minY, maxX, maxY); err != nil {
		return err
	}

	width := new(big.Int).Sub(maxX, minX)
	height := new(big.Int).Sub(maxY, minY)
	limit := big.NewInt(GridSizeMax)
	if width.Cmp(limit) < 0 && height.Cmp(limit) < 0 {
		return drawGrid(w, cells, minX, minY, int(width.Int64())+1, int(height.Int64())+1)
	}
	return drawList(w, cells)
}

func bounds(cells []quadtree.Cell) (minX, minY, maxX, maxY *big.Int) {
	minX = new(big.Int).Set(cells[0].X)
	maxX = new(big.Int).Set(cells[0].X)
	minY = new(big.Int).Set(cells[0].Y)
	maxY = new(big.Int).Set(cells[0].Y)
	for _, c := range cells[1:] {
		if c.X.Cmp(minX) < 0 {
			minX.Set(c.X)
		} else if c.X.Cmp(maxX) > 0 {
			maxX.Set(c.X)
		}
		if c.Y.Cmp(minY) < 0 {
			minY.Set(c.Y)
		} else if c.Y.Cmp(maxY) > 0 {
			maxY.Set(c.Y)
		}
	}
	return minX, minY, maxX, maxY
}

func drawGrid(w io.Writer, cells []quadtree.Cell, minX, minY *big.Int, width, height int) error {
	grid := make([][]byte, height)
	for i := range grid {
		row := make([]byte, width)
		for j := range row {
			row[j] = '_'
		}
		grid[i] = row
	}
	rel := new(big.Int)
	for _, c := range cells {
		x := int(rel.Sub(c.X, minX).Int64())
		y := int(rel.Sub(c.Y, minY).Int64())
		grid[y][x] = '*'
	}
	for _, row := range grid {
		if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}

func drawList(w io.Writer, cells []quadtree.Cell) error {
	for i, c := range cells {
		if i >= ListCellsMax {
			_, err := fmt.Fprintf(w, "\n... and %d more cells\n", len(cells)-ListCellsMax)
			return err
		}
		if _, err := fmt.Fprintf(w, "(%s, %s) ", c.X, c.Y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
