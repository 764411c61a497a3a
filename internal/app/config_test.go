package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlife/pkg/life"
)

func TestLifeConfigMapping(t *testing.T) {
	cfg := NewConfig()
	cfg.GCMode = "generations"
	cfg.GCEvery = 250

	lifeCfg, err := cfg.LifeConfig()
	require.NoError(t, err)
	assert.Equal(t, life.GCGenerations, lifeCfg.GC)
	assert.EqualValues(t, 250, lifeCfg.GCEvery)

	cfg.GCMode = "off"
	lifeCfg, err = cfg.LifeConfig()
	require.NoError(t, err)
	assert.Equal(t, life.GCDisabled, lifeCfg.GC)

	cfg.GCMode = "bogus"
	_, err = cfg.LifeConfig()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"pattern: weekender\ngenerations: 700\ngc_mode: \"off\"\npattern_args:\n  x: \"12\"\n"), 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, "weekender", cfg.Pattern)
	assert.Equal(t, 700, cfg.Generations)
	assert.Equal(t, "off", cfg.GCMode)
	assert.Equal(t, "12", cfg.PatternArgs["x"])

	assert.Error(t, NewConfig().LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestCellsFromPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.OriginX = 5

	cells, err := cfg.Cells()
	require.NoError(t, err)
	assert.ElementsMatch(t, []life.Cell{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}}, cells)

	cfg.Pattern = "no-such-pattern"
	_, err = cfg.Cells()
	assert.Error(t, err)
}

func TestCellsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.rle")
	require.NoError(t, os.WriteFile(path, []byte("x = 3, y = 3\nbob$2bo$3o!\n"), 0o644))

	cfg := NewConfig()
	cfg.File = path
	cells, err := cfg.Cells()
	require.NoError(t, err)
	assert.Len(t, cells, 5)

	cfg.File = filepath.Join(t.TempDir(), "missing.rle")
	_, err = cfg.Cells()
	assert.Error(t, err)
}
