//go:build ebiten

package app

import (
	"time"

	"flames/internal/core"
	"flames/internal/render"
	"flames/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep

	scale       int
	hudWidth    int
	paused      bool
	tickOnce    bool
	seed        int64
	snapshotDir string
	frames      int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	scale := max(cfg.Scale, 1)
	return &Game{
		sim:         sim,
		painter:     render.NewPainter(size.W, size.H),
		overlay:     ui.NewOverlay(sim, scale),
		hud:         ui.NewHUD(sim, cfg.HUDWidth),
		stepper:     core.NewFixedStep(cfg.FPS),
		scale:       scale,
		hudWidth:    max(cfg.HUDWidth, 0),
		seed:        cfg.Seed,
		snapshotDir: cfg.Snapshots,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.frames = 0
}

// Update handles input and advances the simulation at the configured frame
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
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.snapshot()
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.frames++
		g.tickOnce = false
	}
	return nil
}

func (g *Game) snapshot() {
	size := g.sim.Size()
	path := SnapshotPath(g.snapshotDir, g.sim.Name(), g.frames)
	if err := render.SavePNG(path, g.sim.Frame(), size.W, size.H); err != nil {
		core.Logger().Error("snapshot failed", "err", err)
		return
	}
	core.Logger().Info("snapshot saved", "path", path)
}

// Draw renders the current flame frame, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Frame(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
