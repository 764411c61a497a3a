package pattern

import (
	"sort"

	"quadlife/pkg/life"
)

// Factory builds the cell list for a named pattern using an optional
// string-map configuration.
type Factory func(cfg map[string]string) []life.Cell

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate shifts every cell by (dx, dy). Callers keep the result inside
// the signed 64-bit range.
func Translate(cells []life.Cell, dx, dy int64) []life.Cell {
	if dx == 0 && dy == 0 {
		return cells
	}
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		out[i] = life.Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}
