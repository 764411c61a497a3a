//go:build !ebiten

package app

import (
	"errors"
	"log/slog"
)

// RunGUI is unavailable in headless builds.
func RunGUI(cfg *Config, logger *slog.Logger) error {
	return errors.New("the viewer requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/quadlife`")
}
