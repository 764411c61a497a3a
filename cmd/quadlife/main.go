package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quadlife",
	Short: "Conway's Game of Life on an unbounded plane",
	Long: `quadlife simulates Conway's Game of Life on an unbounded grid using a
canonicalized quadtree with memoized one-step evolution, so patterns can be
placed anywhere in the signed 64-bit coordinate range and drift beyond it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("quadlife: %v", err)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
