package pattern

import (
	"math/rand"
	"strconv"

	"quadlife/pkg/life"
)

// SoupConfig holds the tunables for a random soup.
type SoupConfig struct {
	Width   int64
	Height  int64
	Density float64
	Seed    int64
}

// DefaultSoupConfig returns a 64x64 soup at 30% density.
func DefaultSoupConfig() SoupConfig {
	return SoupConfig{Width: 64, Height: 64, Density: 0.3, Seed: 42}
}

// SoupFromMap populates a SoupConfig from a string map.
func SoupFromMap(cfg map[string]string) SoupConfig {
	c := DefaultSoupConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Soup generates a deterministic random rectangle of cells centered on the
// origin.
func Soup(c SoupConfig) []life.Cell {
	rng := rand.New(rand.NewSource(c.Seed))
	var cells []life.Cell
	for y := int64(0); y < c.Height; y++ {
		for x := int64(0); x < c.Width; x++ {
			if rng.Float64() < c.Density {
				cells = append(cells, life.Cell{X: x - c.Width/2, Y: y - c.Height/2})
			}
		}
	}
	return cells
}

func init() {
	Register("soup", func(cfg map[string]string) []life.Cell {
		return Soup(SoupFromMap(cfg))
	})
}
