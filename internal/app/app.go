//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quadlife/internal/render"
	"quadlife/pkg/life"
)

// panStep is how many cells an arrow key moves the viewport per frame.
const panStep = 8

// Game adapts a life.World to the ebiten.Game interface. The window is a
// bounded viewport panned over the unbounded plane; cells outside the
// signed 64-bit range are not drawn.
type Game struct {
	world   *life.World
	seed    []life.Cell
	lifeCfg life.Config
	painter *render.GridPainter
	pace    *FixedStep

	cells      []uint8
	viewW      int
	viewH      int
	scale      int
	tps        int
	camX, camY int64

	paused   bool
	tickOnce bool
}

// NewGame constructs a Game for the provided world. seed is kept so the R
// key can rebuild the initial board.
func NewGame(world *life.World, seed []life.Cell, cfg *Config) *Game {
	lifeCfg, err := cfg.LifeConfig()
	if err != nil {
		lifeCfg = life.DefaultConfig()
	}
	return &Game{
		world:   world,
		seed:    seed,
		lifeCfg: lifeCfg,
		painter: render.NewGridPainter(cfg.ViewWidth, cfg.ViewHeight),
		pace:    NewFixedStep(cfg.TPS),
		cells:   make([]uint8, cfg.ViewWidth*cfg.ViewHeight),
		viewW:   cfg.ViewWidth,
		viewH:   cfg.ViewHeight,
		scale:   cfg.Scale,
		tps:     cfg.TPS,
	}
}

// Reset rebuilds the world from the initial cells.
func (g *Game) Reset() {
	g.world.Shutdown()
	g.world = life.New(g.lifeCfg)
	g.world.SetCellsAlive(g.seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at the paced
// rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.tps *= 2
		g.pace.SetTPS(g.tps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.tps > 1 {
		g.tps /= 2
		g.pace.SetTPS(g.tps)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY += panStep
	}

	if (!g.paused && g.pace.ShouldStep()) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the viewport around the camera position.
func (g *Game) Draw(screen *ebiten.Image) {
	g.refreshCells()
	g.painter.Blit(screen, g.cells, color.White, color.Black, g.scale)
}

func (g *Game) refreshCells() {
	for i := range g.cells {
		g.cells[i] = 0
	}
	left := g.camX - int64(g.viewW/2)
	top := g.camY - int64(g.viewH/2)
	for _, c := range g.world.DisplayList() {
		if !c.X.IsInt64() || !c.Y.IsInt64() {
			continue
		}
		x := c.X.Int64() - left
		y := c.Y.Int64() - top
		if x < 0 || x >= int64(g.viewW) || y < 0 || y >= int64(g.viewH) {
			continue
		}
		g.cells[int(y)*g.viewW+int(x)] = 1
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW * g.scale, g.viewH * g.scale
}

// RunGUI opens an interactive viewer for the configured pattern.
func RunGUI(cfg *Config, logger *slog.Logger) error {
	world, seed, err := cfg.NewWorld(logger)
	if err != nil {
		return err
	}
	defer world.Shutdown()

	game := NewGame(world, seed, cfg)
	ebiten.SetWindowTitle("quadlife — " + cfg.Pattern)
	ebiten.SetWindowSize(cfg.ViewWidth*cfg.Scale, cfg.ViewHeight*cfg.Scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
