package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunBlinkerTwoGenerations(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.Generations = 2
	cfg.GCMode = "off"

	var out strings.Builder
	require.NoError(t, Run(cfg, &out, discardLogger()))

	// Period 2: after two steps the board is the horizontal phase again.
	assert.Contains(t, out.String(), "***")
	assert.Contains(t, out.String(), "bounds min(0, 0) max(2, 0)")
}

func TestRunPrintEvery(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "block"
	cfg.Generations = 3
	cfg.PrintEvery = 1
	cfg.GCMode = "off"

	var out strings.Builder
	require.NoError(t, Run(cfg, &out, discardLogger()))
	// Three intermediate draws plus the final one.
	assert.Equal(t, 4, strings.Count(out.String(), "bounds "))
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.GCMode = "sideways"
	assert.Error(t, Run(cfg, io.Discard, discardLogger()))

	cfg = NewConfig()
	cfg.Pattern = "missing"
	assert.Error(t, Run(cfg, io.Discard, discardLogger()))
}
