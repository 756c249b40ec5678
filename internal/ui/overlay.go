//go:build ebiten

package ui

import (
	"image/color"

	"flames/internal/core"
	"flames/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type densityProvider interface {
	Density(dst []float32) []float32
}

type statsProvider interface {
	Tick() int64
	Deposits() int
	Divergence() float64
}

// Overlay draws optional debugging visuals on top of the flame.
type Overlay struct {
	sim   core.Sim
	scale int

	showDensity bool
	showStats   bool

	painter *render.Painter
	palette *render.Palette
	density []float32
	peak    float32

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	o := &Overlay{
		sim:     sim,
		scale:   scale,
		painter: render.NewPainter(size.W, size.H),
		palette: render.HeatPalette(),
		pixel:   ebiten.NewImage(1, 1),
	}
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers: 1 for the density heat map, 2 for the stats
// line.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDensity = !o.showDensity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showDensity {
		if provider, ok := o.sim.(densityProvider); ok {
			o.density = provider.Density(o.density)
			o.peak = o.painter.BlitHeat(screen, o.density, o.palette, scale)
		}
	}
	if o.showStats {
		if provider, ok := o.sim.(statsProvider); ok {
			o.drawStats(screen, statsLine(provider.Tick(), provider.Deposits(), provider.Divergence(), o.peak))
		}
	}
}

func (o *Overlay) drawStats(screen *ebiten.Image, line string) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*statsPadding), float64(face.Height+2*statsPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, line, face, statsPadding, statsPadding+face.Ascent, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

const statsPadding = 4
