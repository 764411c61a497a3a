package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"quadlife/internal/metrics"
	"quadlife/internal/pattern"
	"quadlife/internal/render"
	"quadlife/internal/rle"
	"quadlife/pkg/life"
)

// Cells resolves the configured input into a coordinate list, either by
// decoding an RLE file or by invoking a registered pattern factory. The
// origin offset translates file patterns during decoding (with bounding-box
// clamping) and built-in patterns afterwards.
func (c *Config) Cells() ([]life.Cell, error) {
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		cells, err := rle.Decode(f, c.OriginX, c.OriginY)
		if err != nil {
			return nil, fmt.Errorf("pattern file %s: %w", c.File, err)
		}
		return cells, nil
	}
	factory, ok := pattern.Patterns()[c.Pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	return pattern.Translate(factory(c.PatternArgs), c.OriginX, c.OriginY), nil
}

// NewWorld builds a world from the configuration and seeds it with the
// configured input cells.
func (c *Config) NewWorld(logger *slog.Logger) (*life.World, []life.Cell, error) {
	lifeCfg, err := c.LifeConfig()
	if err != nil {
		return nil, nil, err
	}
	lifeCfg.Logger = logger
	cells, err := c.Cells()
	if err != nil {
		return nil, nil, err
	}
	world := life.New(lifeCfg)
	world.SetCellsAlive(cells)
	return world, cells, nil
}

// Run executes a headless simulation: seed the world, step the configured
// number of generations, and draw the final board to out.
func Run(cfg *Config, out io.Writer, logger *slog.Logger) error {
	world, _, err := cfg.NewWorld(logger)
	if err != nil {
		return err
	}
	defer world.Shutdown()

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		m = metrics.New(reg)
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler(reg)); err != nil {
				logger.Error("metrics endpoint failed", "addr", cfg.MetricsAddr, "err", err)
			}
		}()
		logger.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	start := time.Now()
	for i := 0; i < cfg.Generations; i++ {
		stepStart := time.Now()
		world.Step()
		if m != nil {
			m.ObserveStep(time.Since(stepStart))
			m.Update(world.Stats())
		}
		if cfg.PrintEvery > 0 && world.Generation()%int64(cfg.PrintEvery) == 0 {
			if err := render.Draw(out, world.DisplayList()); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	if err := render.Draw(out, world.DisplayList()); err != nil {
		return err
	}
	st := world.Stats()
	logger.Info("run complete",
		"generations", st.Generation,
		"population", st.Population.String(),
		"level", st.Level,
		"live_nodes", st.LiveNodes,
		"nodes_created", st.NodesCreated,
		"elapsed", elapsed)
	if cfg.Verbose {
		logger.Debug("quadrant populations",
			"nw", st.Quadrants[0].String(),
			"ne", st.Quadrants[1].String(),
			"sw", st.Quadrants[2].String(),
			"se", st.Quadrants[3].String())
	}
	return nil
}
